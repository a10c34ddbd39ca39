// Package wordlistcmd implements the `seedsplit wordlist` command.
package wordlistcmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-ports/seedsplit/cmd/seedsplit/shared"
)

// Command implements `seedsplit wordlist`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	index int
	word  string
}

// New creates the wordlist command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "wordlist",
		Short: "Look up words and indexes in the active wordlist",
		Long: "Without flags, print every entry as \"<index> <word>\".\n" +
			"With --index, print the word at that index; with --word, print its index.",
		Args: cobra.NoArgs,
		RunE: c.run,
	}

	f := c.cmd.Flags()
	f.IntVar(&c.index, "index", -1, "Print the word at this index (0-2047)")
	f.StringVar(&c.word, "word", "", "Print the index of this word")
	c.cmd.MarkFlagsMutuallyExclusive("index", "word")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, _ []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	switch {
	case cmd.Flags().Changed("index"):
		w, err := svc.WordAt(c.index)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, w)
	case c.word != "":
		res := svc.Suggest(c.word)
		if !res.Valid {
			return fmt.Errorf("word %q is not in the wordlist; did you mean %q?", res.Word, res.Suggestion)
		}
		fmt.Fprintln(out, res.Index)
	default:
		var sb strings.Builder
		for i, w := range svc.Dictionary().Words() {
			fmt.Fprintf(&sb, "%4d %s\n", i, w)
		}
		fmt.Fprint(out, sb.String())
	}
	return nil
}
