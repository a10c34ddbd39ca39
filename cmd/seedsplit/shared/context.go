// Package shared holds the context passed to all CLI commands.
package shared

import (
	"path/filepath"

	"github.com/go-ports/seedsplit/internal/config"
	"github.com/go-ports/seedsplit/internal/service"
	"github.com/go-ports/seedsplit/internal/wordlist"
)

// Context carries global CLI state (flags set on the root command).
type Context struct {
	// Home overrides the config home directory.
	// When empty, resolution falls through to SEEDSPLIT_HOME env var → ~/.seedsplit.
	Home string
	// Wordlist overrides the dictionary file from config.yaml.
	Wordlist string
	// Verbose enables debug logging on stderr.
	Verbose bool
}

// Service builds a service.Service from the global flags.
func (c *Context) Service() (*service.Service, error) {
	return service.New(c.Home, c.Wordlist)
}

// Dictionary returns the dictionary the commands will use: --wordlist, then
// the wordlist from config.yaml, then BIP39 English. Load failures fall back
// to English; the command reports them when it builds its service.
func (c *Context) Dictionary() *wordlist.Dictionary {
	path := c.Wordlist
	if path == "" {
		home := c.Home
		if home == "" {
			home = config.GetHome()
		}
		cfg, err := config.Load(filepath.Join(home, config.FileName))
		if err != nil {
			return wordlist.English()
		}
		path = cfg.Wordlist
	}
	if path == "" {
		return wordlist.English()
	}
	d, err := wordlist.Load(path)
	if err != nil {
		return wordlist.English()
	}
	return d
}

// Format returns flag when set, otherwise the configured output format.
func Format(svc *service.Service, flag string) string {
	if flag != "" {
		return flag
	}
	return svc.Config.Output
}
