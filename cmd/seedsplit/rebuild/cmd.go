// Package rebuildcmd implements the `seedsplit rebuild` command.
package rebuildcmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/go-ports/seedsplit/cmd/seedsplit/shared"
	"github.com/go-ports/seedsplit/internal/render"
)

var errShares = errors.New("rebuild: pass share A and share B separated by --, or use --a and --b")

// Command implements `seedsplit rebuild`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	shareA string
	shareB string
	format string
}

// New creates the rebuild command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "rebuild <share A words>... -- <share B words>...",
		Short: "Rebuild a seed phrase from shares A and B",
		Long: "Rebuild a seed phrase from its two shares. Shares must have the same\n" +
			"number of words. Separate the shares with --, or pass each one as a\n" +
			"quoted string with --a and --b.",
		RunE: c.run,
	}

	f := c.cmd.Flags()
	f.StringVar(&c.shareA, "a", "", "Share A as one quoted string")
	f.StringVar(&c.shareB, "b", "", "Share B as one quoted string")
	f.StringVar(&c.format, "format", "", "Output format: text, json, yaml (default: output from config)")
	c.cmd.MarkFlagsRequiredTogether("a", "b")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	a, b, err := c.shares(cmd, args)
	if err != nil {
		return err
	}

	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	result, err := svc.Rebuild(cmd.Context(), a, b)
	if err != nil {
		return err
	}
	return render.Rebuild(cmd.OutOrStdout(), shared.Format(svc, c.format), result)
}

// shares picks the two shares from --a/--b or from positional args split at --.
func (c *Command) shares(cmd *cobra.Command, args []string) (a, b []string, err error) {
	if c.shareA != "" || c.shareB != "" {
		if len(args) > 0 {
			return nil, nil, errShares
		}
		return []string{c.shareA}, []string{c.shareB}, nil
	}
	dash := cmd.ArgsLenAtDash()
	if dash < 1 || dash >= len(args) {
		return nil, nil, errShares
	}
	return args[:dash], args[dash:], nil
}
