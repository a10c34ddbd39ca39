// Package suggestcmd implements the `seedsplit suggest` command.
package suggestcmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/seedsplit/cmd/seedsplit/shared"
	"github.com/go-ports/seedsplit/internal/render"
)

// Command implements `seedsplit suggest`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	format string
}

// New creates the suggest command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "suggest <word>",
		Short: "Check a word against the wordlist and suggest the closest entry",
		Args:  cobra.ExactArgs(1),
		RunE:  c.run,
	}
	c.cmd.Flags().StringVar(&c.format, "format", "", "Output format: text, json, yaml (default: output from config)")
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}
	return render.Suggest(cmd.OutOrStdout(), shared.Format(svc, c.format), svc.Suggest(args[0]))
}
