// Package rootcmd wires the root cobra.Command for the seedsplit CLI binary.
package rootcmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	configcmd "github.com/go-ports/seedsplit/cmd/seedsplit/config"
	mcpcmd "github.com/go-ports/seedsplit/cmd/seedsplit/mcp"
	rebuildcmd "github.com/go-ports/seedsplit/cmd/seedsplit/rebuild"
	"github.com/go-ports/seedsplit/cmd/seedsplit/shared"
	splitcmd "github.com/go-ports/seedsplit/cmd/seedsplit/split"
	suggestcmd "github.com/go-ports/seedsplit/cmd/seedsplit/suggest"
	versioncmd "github.com/go-ports/seedsplit/cmd/seedsplit/version"
	wordlistcmd "github.com/go-ports/seedsplit/cmd/seedsplit/wordlist"
	"github.com/go-ports/seedsplit/internal/redaction"
)

// New creates and returns the root cobra.Command for the seedsplit CLI.
func New() *cobra.Command {
	ctx := &shared.Context{}

	root := &cobra.Command{
		Use:           "seedsplit",
		Short:         "seedsplit: split a seed phrase into two shares and rebuild it",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if ctx.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level:       level,
				ReplaceAttr: redaction.ReplaceAttr(ctx.Dictionary(), redaction.MinRun),
			})))
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&ctx.Home, "home", "",
		"Override config home directory (default: $SEEDSPLIT_HOME env → ~/.seedsplit)")
	f.StringVar(&ctx.Wordlist, "wordlist", "",
		"Path to a custom 2048-word list (default: BIP39 English)")
	f.BoolVarP(&ctx.Verbose, "verbose", "v", false, "Enable debug logging on stderr")

	root.AddCommand(
		splitcmd.New(ctx).Cmd(),
		rebuildcmd.New(ctx).Cmd(),
		suggestcmd.New(ctx).Cmd(),
		wordlistcmd.New(ctx).Cmd(),
		configcmd.New(ctx).Cmd(),
		mcpcmd.New(ctx).Cmd(),
		versioncmd.New(ctx).Cmd(),
	)

	return root
}
