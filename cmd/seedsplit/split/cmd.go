// Package splitcmd implements the `seedsplit split` command.
package splitcmd

import (
	"github.com/spf13/cobra"

	"github.com/go-ports/seedsplit/cmd/seedsplit/shared"
	"github.com/go-ports/seedsplit/internal/render"
)

// Command implements `seedsplit split`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command

	sets   int
	format string
}

// New creates the split command.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "split <word>...",
		Short: "Split a seed phrase (12-24 words) into two shares",
		Long: "Split a seed phrase into shares A and B of the same length.\n" +
			"The phrase may be given as separate arguments or as one quoted string.\n" +
			"Each printed pair is independent; keep one pair and store A and B apart.",
		Args: cobra.MinimumNArgs(1),
		RunE: c.run,
	}

	f := c.cmd.Flags()
	f.IntVar(&c.sets, "sets", 0, "Number of independent share pairs (default: share_sets from config)")
	f.StringVar(&c.format, "format", "", "Output format: text, json, yaml (default: output from config)")

	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) run(cmd *cobra.Command, args []string) error {
	svc, err := c.ctx.Service()
	if err != nil {
		return err
	}

	result, err := svc.Split(cmd.Context(), args, c.sets)
	if err != nil {
		return err
	}
	return render.Split(cmd.OutOrStdout(), shared.Format(svc, c.format), result)
}
