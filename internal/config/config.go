// Package config handles configuration loading and home directory resolution.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name inside the home directory.
const FileName = "config.yaml"

// Random source names.
const (
	RandomCrypto = "crypto"
	RandomSeeded = "seeded"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// MaxShareSets caps how many independent pairs one split may produce.
const MaxShareSets = 10

var ErrInvalidConfig = errors.New("invalid config")

// ---------------------------------------------------------------------------
// Config types
// ---------------------------------------------------------------------------

// Config is the root configuration.
type Config struct {
	Wordlist  string `yaml:"wordlist"`   // path to a custom list; empty = BIP39 English
	ShareSets int    `yaml:"share_sets"` // pairs produced per split
	Random    string `yaml:"random"`     // "crypto" | "seeded"
	Seed      uint64 `yaml:"seed"`       // only used with random: seeded
	Output    string `yaml:"output"`     // "text" | "json" | "yaml"
	MinWords  int    `yaml:"min_words"`
	MaxWords  int    `yaml:"max_words"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		ShareSets: 3,
		Random:    RandomCrypto,
		Output:    OutputText,
		MinWords:  12,
		MaxWords:  24,
	}
}

// Load reads config.yaml from path.
// If the file does not exist it returns Default() with no error.
// Missing keys retain their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	// Unmarshal into a plain map so we can apply only the keys that are present.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config.Load: %s: %w", path, err)
	}

	if v, ok := raw["wordlist"].(string); ok {
		cfg.Wordlist = strings.TrimSpace(v)
	}
	if v, ok := raw["share_sets"].(int); ok {
		cfg.ShareSets = v
	}
	if v, ok := raw["random"].(string); ok && v != "" {
		cfg.Random = strings.ToLower(v)
	}
	if v, ok := raw["seed"]; ok && v != nil {
		seed, err := parseSeed(v)
		if err != nil {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
		cfg.Seed = seed
	}
	if v, ok := raw["output"].(string); ok && v != "" {
		cfg.Output = strings.ToLower(v)
	}
	if v, ok := raw["min_words"].(int); ok {
		cfg.MinWords = v
	}
	if v, ok := raw["max_words"].(int); ok {
		cfg.MaxWords = v
	}

	if cfg.Wordlist != "" {
		p, err := normalizePath(cfg.Wordlist)
		if err != nil {
			return nil, err
		}
		cfg.Wordlist = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %s: %w", path, err)
	}
	return cfg, nil
}

// parseSeed accepts the integer types yaml.v3 decodes into; values above
// MaxInt64 arrive as uint64.
func parseSeed(v any) (uint64, error) {
	switch n := v.(type) {
	case int:
		if n < 0 {
			return 0, fmt.Errorf("seed must not be negative: %w", ErrInvalidConfig)
		}
		return uint64(n), nil
	case uint64:
		return n, nil
	default:
		return 0, fmt.Errorf("seed must be an unsigned integer, got %T: %w", v, ErrInvalidConfig)
	}
}

// Validate reports the first out-of-range setting.
func (c *Config) Validate() error {
	switch {
	case c.ShareSets < 1 || c.ShareSets > MaxShareSets:
		return fmt.Errorf("share_sets must be between 1 and %d, got %d: %w", MaxShareSets, c.ShareSets, ErrInvalidConfig)
	case c.Random != RandomCrypto && c.Random != RandomSeeded:
		return fmt.Errorf("random must be %q or %q, got %q: %w", RandomCrypto, RandomSeeded, c.Random, ErrInvalidConfig)
	case !ValidOutput(c.Output):
		return fmt.Errorf("output must be text, json or yaml, got %q: %w", c.Output, ErrInvalidConfig)
	case c.MinWords < 1 || c.MaxWords > 2048 || c.MinWords > c.MaxWords:
		return fmt.Errorf("word bounds %d..%d must satisfy 1 <= min <= max <= 2048: %w", c.MinWords, c.MaxWords, ErrInvalidConfig)
	}
	return nil
}

// ValidOutput reports whether format is a known output format.
func ValidOutput(format string) bool {
	switch format {
	case OutputText, OutputJSON, OutputYAML:
		return true
	}
	return false
}

// ---------------------------------------------------------------------------
// Home resolution
// ---------------------------------------------------------------------------

// normalizePath expands ~ and makes the path absolute.
func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(os.ExpandEnv(path))
}

// ResolveHome returns the config home path and the source of the resolution.
// Priority: SEEDSPLIT_HOME env → ~/.seedsplit
// source is one of "env" or "default".
func ResolveHome() (path, source string) {
	if env := os.Getenv("SEEDSPLIT_HOME"); env != "" {
		p, err := normalizePath(env)
		if err == nil {
			return p, "env"
		}
	}

	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".seedsplit"), "default"
}

// GetHome returns the resolved config home path.
func GetHome() string {
	path, _ := ResolveHome()
	return path
}
