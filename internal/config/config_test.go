package config_test

import (
	"os"
	"path/filepath"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/seedsplit/internal/config"
)

func writeConfig(c *qt.C, body string) string {
	c.Helper()
	path := filepath.Join(c.TempDir(), config.FileName)
	c.Assert(os.WriteFile(path, []byte(body), 0o600), qt.IsNil)
	return path
}

func TestDefault_HappyPath(t *testing.T) {
	c := qt.New(t)
	cfg := config.Default()
	c.Assert(cfg, qt.IsNotNil)
	c.Assert(cfg.Wordlist, qt.Equals, "")
	c.Assert(cfg.ShareSets, qt.Equals, 3)
	c.Assert(cfg.Random, qt.Equals, config.RandomCrypto)
	c.Assert(cfg.Output, qt.Equals, config.OutputText)
	c.Assert(cfg.MinWords, qt.Equals, 12)
	c.Assert(cfg.MaxWords, qt.Equals, 24)
	c.Assert(cfg.Validate(), qt.IsNil)
}

func TestLoad_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("non-existent file returns defaults without error", func(c *qt.C) {
		cfg, err := config.Load("/nonexistent/config.yaml")
		c.Assert(err, qt.IsNil)
		c.Assert(cfg, qt.DeepEquals, config.Default())
	})

	tests := []struct {
		name          string
		yaml          string
		wantShareSets int
		wantRandom    string
		wantSeed      uint64
		wantOutput    string
		wantMin       int
		wantMax       int
	}{
		{
			name:          "share_sets override",
			yaml:          "share_sets: 1\n",
			wantShareSets: 1,
			wantRandom:    "crypto",
			wantOutput:    "text",
			wantMin:       12,
			wantMax:       24,
		},
		{
			name:          "seeded random with seed",
			yaml:          "random: seeded\nseed: 1234\n",
			wantShareSets: 3,
			wantRandom:    "seeded",
			wantSeed:      1234,
			wantOutput:    "text",
			wantMin:       12,
			wantMax:       24,
		},
		{
			name:          "seed above MaxInt64",
			yaml:          "random: seeded\nseed: 18446744073709551615\n",
			wantShareSets: 3,
			wantRandom:    "seeded",
			wantSeed:      18446744073709551615,
			wantOutput:    "text",
			wantMin:       12,
			wantMax:       24,
		},
		{
			name:          "output is lowercased",
			yaml:          "output: JSON\n",
			wantShareSets: 3,
			wantRandom:    "crypto",
			wantOutput:    "json",
			wantMin:       12,
			wantMax:       24,
		},
		{
			name:          "word bounds",
			yaml:          "min_words: 3\nmax_words: 48\n",
			wantShareSets: 3,
			wantRandom:    "crypto",
			wantOutput:    "text",
			wantMin:       3,
			wantMax:       48,
		},
	}

	for _, tt := range tests {
		c.Run(tt.name, func(c *qt.C) {
			cfg, err := config.Load(writeConfig(c, tt.yaml))
			c.Assert(err, qt.IsNil)
			c.Assert(cfg.ShareSets, qt.Equals, tt.wantShareSets)
			c.Assert(cfg.Random, qt.Equals, tt.wantRandom)
			c.Assert(cfg.Seed, qt.Equals, tt.wantSeed)
			c.Assert(cfg.Output, qt.Equals, tt.wantOutput)
			c.Assert(cfg.MinWords, qt.Equals, tt.wantMin)
			c.Assert(cfg.MaxWords, qt.Equals, tt.wantMax)
		})
	}
}

func TestLoad_WordlistPathIsAbsolute(t *testing.T) {
	c := qt.New(t)

	cfg, err := config.Load(writeConfig(c, "wordlist: words.txt\n"))
	c.Assert(err, qt.IsNil)
	c.Assert(filepath.IsAbs(cfg.Wordlist), qt.IsTrue)
	c.Assert(filepath.Base(cfg.Wordlist), qt.Equals, "words.txt")
}

func TestLoad_FailurePath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name string
		yaml string
	}{
		{"share_sets zero", "share_sets: 0\n"},
		{"share_sets too large", "share_sets: 11\n"},
		{"unknown random source", "random: dice\n"},
		{"unknown output", "output: xml\n"},
		{"min above max", "min_words: 20\nmax_words: 12\n"},
		{"max above dictionary", "max_words: 4096\n"},
		{"negative seed", "random: seeded\nseed: -1\n"},
		{"seed overflows uint64", "random: seeded\nseed: 18446744073709551616\n"},
		{"seed not an integer", "random: seeded\nseed: abc\n"},
		{"fractional seed", "random: seeded\nseed: 1.5\n"},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			_, err := config.Load(writeConfig(c, tc.yaml))
			c.Assert(err, qt.ErrorIs, config.ErrInvalidConfig)
		})
	}

	c.Run("malformed yaml", func(c *qt.C) {
		_, err := config.Load(writeConfig(c, "share_sets: [\n"))
		c.Assert(err, qt.IsNotNil)
	})
}

func TestResolveHome(t *testing.T) {
	c := qt.New(t)

	c.Run("env override", func(c *qt.C) {
		dir := c.TempDir()
		c.Setenv("SEEDSPLIT_HOME", dir)
		path, source := config.ResolveHome()
		c.Assert(path, qt.Equals, dir)
		c.Assert(source, qt.Equals, "env")
		c.Assert(config.GetHome(), qt.Equals, dir)
	})

	c.Run("default", func(c *qt.C) {
		c.Setenv("SEEDSPLIT_HOME", "")
		path, source := config.ResolveHome()
		c.Assert(source, qt.Equals, "default")
		c.Assert(filepath.Base(path), qt.Equals, ".seedsplit")
	})
}

func TestValidOutput(t *testing.T) {
	c := qt.New(t)

	c.Assert(config.ValidOutput("text"), qt.IsTrue)
	c.Assert(config.ValidOutput("json"), qt.IsTrue)
	c.Assert(config.ValidOutput("yaml"), qt.IsTrue)
	c.Assert(config.ValidOutput("TEXT"), qt.IsFalse)
	c.Assert(config.ValidOutput(""), qt.IsFalse)
}
