// Package configcmd implements the `seedsplit config` command group.
package configcmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/go-ports/seedsplit/cmd/seedsplit/shared"
	"github.com/go-ports/seedsplit/internal/config"
)

const configTemplate = `# seedsplit configuration

# Path to a custom 2048-word list, one word per line.
# Leave empty to use the BIP39 English wordlist.
wordlist: ""

# Number of independent share pairs printed by "seedsplit split".
share_sets: 3                   # 1-10

# Random source for share A.
# "seeded" is reproducible and only meant for demos and tests.
random: crypto                  # crypto | seeded
# seed: 42                      # used with random: seeded

# Default output format.
output: text                    # text | json | yaml

# Accepted phrase length.
min_words: 12
max_words: 24
`

// Command implements `seedsplit config`.
type Command struct {
	ctx *shared.Context
	cmd *cobra.Command
}

// New creates the config command group.
func New(ctx *shared.Context) *Command {
	c := &Command{ctx: ctx}
	c.cmd = &cobra.Command{
		Use:   "config",
		Short: "Show or manage configuration",
		RunE:  c.runShow,
	}
	c.cmd.AddCommand(newConfigInit(ctx))
	return c
}

// Cmd returns the cobra command.
func (c *Command) Cmd() *cobra.Command { return c.cmd }

func (c *Command) runShow(cmd *cobra.Command, _ []string) error {
	home, source := config.ResolveHome()
	if c.ctx.Home != "" {
		home = c.ctx.Home
		source = "flag"
	}
	cfg, err := config.Load(filepath.Join(home, config.FileName))
	if err != nil {
		return err
	}
	wordlist := cfg.Wordlist
	if c.ctx.Wordlist != "" {
		wordlist = c.ctx.Wordlist
	}
	if wordlist == "" {
		wordlist = "bip39-english"
	}
	data := map[string]any{
		"wordlist":    wordlist,
		"share_sets":  cfg.ShareSets,
		"random":      cfg.Random,
		"output":      cfg.Output,
		"min_words":   cfg.MinWords,
		"max_words":   cfg.MaxWords,
		"home":        home,
		"home_source": source,
	}
	if cfg.Random == config.RandomSeeded {
		data["seed"] = cfg.Seed
	}
	b, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(b))
	return nil
}

// ---------------------------------------------------------------------------
// config init
// ---------------------------------------------------------------------------

func newConfigInit(ctx *shared.Context) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a starter config.yaml",
		RunE: func(cmd *cobra.Command, _ []string) error {
			home := ctx.Home
			if home == "" {
				home = config.GetHome()
			}
			cfgPath := filepath.Join(home, config.FileName)
			out := cmd.OutOrStdout()
			if _, err := os.Stat(cfgPath); err == nil && !force {
				fmt.Fprintf(out, "Config already exists at %s\n", cfgPath)
				fmt.Fprintln(out, "Use --force to overwrite.")
				return nil
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if err := os.WriteFile(cfgPath, []byte(configTemplate), 0o600); err != nil {
				return err
			}
			fmt.Fprintf(out, "Created %s\n", cfgPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config")
	return cmd
}
