package shared_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/seedsplit/cmd/seedsplit/shared"
	"github.com/go-ports/seedsplit/internal/config"
	"github.com/go-ports/seedsplit/internal/wordlist"
)

func writeWordlist(c *qt.C, prefix string) string {
	c.Helper()
	var sb strings.Builder
	for i := range wordlist.Size {
		fmt.Fprintf(&sb, "%s%04d\n", prefix, i)
	}
	path := filepath.Join(c.TempDir(), "words.txt")
	c.Assert(os.WriteFile(path, []byte(sb.String()), 0o600), qt.IsNil)
	return path
}

func TestContextDictionary_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("default is english", func(c *qt.C) {
		ctx := &shared.Context{Home: c.TempDir()}
		c.Assert(ctx.Dictionary(), qt.Equals, wordlist.English())
	})

	c.Run("wordlist flag", func(c *qt.C) {
		ctx := &shared.Context{Home: c.TempDir(), Wordlist: writeWordlist(c, "f")}
		c.Assert(ctx.Dictionary().WordAt(0), qt.Equals, "f0000")
	})

	c.Run("wordlist from config", func(c *qt.C) {
		home := c.TempDir()
		cfg := "wordlist: " + writeWordlist(c, "k") + "\n"
		c.Assert(os.WriteFile(filepath.Join(home, config.FileName), []byte(cfg), 0o600), qt.IsNil)

		ctx := &shared.Context{Home: home}
		c.Assert(ctx.Dictionary().WordAt(0), qt.Equals, "k0000")
	})

	c.Run("flag wins over config", func(c *qt.C) {
		home := c.TempDir()
		cfg := "wordlist: " + writeWordlist(c, "k") + "\n"
		c.Assert(os.WriteFile(filepath.Join(home, config.FileName), []byte(cfg), 0o600), qt.IsNil)

		ctx := &shared.Context{Home: home, Wordlist: writeWordlist(c, "f")}
		c.Assert(ctx.Dictionary().WordAt(0), qt.Equals, "f0000")
	})
}

func TestContextDictionary_FallsBackToEnglish(t *testing.T) {
	c := qt.New(t)

	c.Run("broken wordlist", func(c *qt.C) {
		path := filepath.Join(c.TempDir(), "words.txt")
		c.Assert(os.WriteFile(path, []byte("only\nthree\nwords\n"), 0o600), qt.IsNil)
		ctx := &shared.Context{Home: c.TempDir(), Wordlist: path}
		c.Assert(ctx.Dictionary(), qt.Equals, wordlist.English())
	})

	c.Run("invalid config", func(c *qt.C) {
		home := c.TempDir()
		c.Assert(os.WriteFile(filepath.Join(home, config.FileName), []byte("share_sets: 0\n"), 0o600), qt.IsNil)
		ctx := &shared.Context{Home: home}
		c.Assert(ctx.Dictionary(), qt.Equals, wordlist.English())
	})
}
