// Package service implements the Service orchestrator that wires together
// configuration, the dictionary, validation, randomness and the transform.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	bip39 "github.com/vcvvvc/go-wallet-sdk/crypto/go-bip39"

	"github.com/go-ports/seedsplit/internal/config"
	"github.com/go-ports/seedsplit/internal/models"
	"github.com/go-ports/seedsplit/internal/random"
	"github.com/go-ports/seedsplit/internal/share"
	"github.com/go-ports/seedsplit/internal/transform"
	"github.com/go-ports/seedsplit/internal/validate"
	"github.com/go-ports/seedsplit/internal/wordlist"
)

// ErrIndexOutOfRange is returned by WordAt for an index outside the dictionary.
var ErrIndexOutOfRange = errors.New("index out of range")

// Service orchestrates split and rebuild requests. It holds no secrets
// between calls and is safe for concurrent use.
type Service struct {
	Home   string
	Config *config.Config

	dict        *wordlist.Dictionary
	src         random.Source
	validator   *validate.Validator
	transformer *transform.Transformer
}

// New initialises a Service rooted at home.
// If home is empty it is resolved via config.GetHome. A non-empty
// wordlistPath overrides the wordlist configured in config.yaml.
func New(home, wordlistPath string) (*Service, error) {
	if home == "" {
		home = config.GetHome()
	}

	cfg, err := config.Load(filepath.Join(home, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("service.New: load config: %w", err)
	}
	if wordlistPath != "" {
		cfg.Wordlist = wordlistPath
	}

	s, err := NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	s.Home = home
	return s, nil
}

// NewFromConfig builds a Service from an already loaded config.
func NewFromConfig(cfg *config.Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("service.New: %w", err)
	}

	dict := wordlist.English()
	if cfg.Wordlist != "" {
		d, err := wordlist.Load(cfg.Wordlist)
		if err != nil {
			return nil, fmt.Errorf("service.New: %w", err)
		}
		dict = d
	}

	var src random.Source
	switch cfg.Random {
	case config.RandomSeeded:
		slog.Warn("using a seeded random source; shares are reproducible and must not protect real funds", "seed", cfg.Seed)
		src = random.NewSeeded(cfg.Seed)
	default:
		src = random.Default()
	}

	return &Service{
		Config:      cfg,
		dict:        dict,
		src:         src,
		validator:   validate.New(dict).WithBounds(cfg.MinWords, cfg.MaxWords),
		transformer: transform.New(dict, share.New(dict, src)),
	}, nil
}

// Dictionary returns the active dictionary.
func (s *Service) Dictionary() *wordlist.Dictionary { return s.dict }

// ---------------------------------------------------------------------------
// Internal helpers
// ---------------------------------------------------------------------------

// Canonicalize splits every argument on whitespace and lowercases the words,
// so a phrase may be passed as one quoted string or as separate words.
func Canonicalize(args []string) []string {
	var words []string
	for _, a := range args {
		for _, w := range strings.Fields(a) {
			words = append(words, strings.ToLower(w))
		}
	}
	return words
}

// duplicateWarnings returns a warning when seq repeats a word.
func (s *Service) duplicateWarnings(label string, seq []string) []models.Warning {
	if s.validator.CheckUniqueness(seq) {
		return nil
	}
	return []models.Warning{models.DuplicateWarning(label, validate.Duplicates(seq))}
}

// checksumWarnings flags a phrase without a valid BIP39 checksum. Only the
// built-in English list defines a checksum.
func (s *Service) checksumWarnings(phrase []string) []models.Warning {
	if !wordlist.IsEnglish(s.dict) {
		return nil
	}
	if bip39.IsMnemonicValid(models.Join(phrase)) {
		return nil
	}
	return []models.Warning{{
		Kind:    models.WarnChecksum,
		Message: "The phrase does not carry a valid BIP39 checksum. Double-check the words before relying on it.",
	}}
}

// checkSequence runs the length and membership checks for one sequence.
func (s *Service) checkSequence(label string, seq []string) error {
	if err := s.validator.CheckPhraseLength(seq); err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	if err := s.validator.CheckMembership(seq); err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Split
// ---------------------------------------------------------------------------

// Split validates phrase and returns sets independent share pairs. sets <= 0
// uses the configured share_sets. Validation runs to completion before any
// share is drawn; no partial result is returned on error.
func (s *Service) Split(ctx context.Context, phrase []string, sets int) (*models.SplitResult, error) {
	if sets <= 0 {
		sets = s.Config.ShareSets
	}
	if sets > config.MaxShareSets {
		return nil, fmt.Errorf("service.Split: at most %d share sets, got %d: %w", config.MaxShareSets, sets, config.ErrInvalidConfig)
	}

	words := Canonicalize(phrase)
	warnings := s.duplicateWarnings("the phrase", words)

	if err := s.checkSequence("phrase", words); err != nil {
		return nil, fmt.Errorf("service.Split: %w", err)
	}
	warnings = append(warnings, s.checksumWarnings(words)...)
	if !random.IsSecure(s.src) {
		warnings = append(warnings, models.Warning{
			Kind:    models.WarnInsecureRandom,
			Message: "Shares were drawn from a seeded random source and can be reproduced from the seed.",
		})
	}

	pairs := make([]models.SharePair, 0, sets)
	for range sets {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("service.Split: %w", err)
		}
		a, b, err := s.transformer.Split(words)
		if err != nil {
			return nil, fmt.Errorf("service.Split: %w", err)
		}
		pairs = append(pairs, models.SharePair{A: a, B: b})
	}

	slog.Debug("split", "words", len(words), "sets", sets, "warnings", len(warnings))
	if warnings == nil {
		warnings = make([]models.Warning, 0)
	}
	return &models.SplitResult{Pairs: pairs, Warnings: warnings}, nil
}

// ---------------------------------------------------------------------------
// Rebuild
// ---------------------------------------------------------------------------

// Rebuild validates both shares and combines them into the original phrase.
// Checks run in order: repeated-word warnings for A then B, share A (length
// and membership), share B membership, then the length match.
func (s *Service) Rebuild(ctx context.Context, shareA, shareB []string) (*models.RebuildResult, error) {
	a := Canonicalize(shareA)
	b := Canonicalize(shareB)

	warnings := s.duplicateWarnings("share A", a)
	warnings = append(warnings, s.duplicateWarnings("share B", b)...)

	if err := s.checkSequence("share A", a); err != nil {
		return nil, fmt.Errorf("service.Rebuild: %w", err)
	}
	// Share B is bounded through the length match with share A.
	if err := s.validator.CheckMembership(b); err != nil {
		return nil, fmt.Errorf("service.Rebuild: share B: %w", err)
	}
	if err := s.validator.CheckLengthMatch(a, b); err != nil {
		return nil, fmt.Errorf("service.Rebuild: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service.Rebuild: %w", err)
	}

	phrase, err := s.transformer.Rebuild(a, b)
	if err != nil {
		return nil, fmt.Errorf("service.Rebuild: %w", err)
	}
	warnings = append(warnings, s.checksumWarnings(phrase)...)

	slog.Debug("rebuild", "words", len(phrase), "warnings", len(warnings))
	if warnings == nil {
		warnings = make([]models.Warning, 0)
	}
	return &models.RebuildResult{Phrase: phrase, Warnings: warnings}, nil
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

// Suggest reports whether word is in the dictionary and its closest entry.
func (s *Service) Suggest(word string) *models.SuggestResult {
	w := strings.ToLower(strings.TrimSpace(word))
	res := &models.SuggestResult{Word: w, Index: -1}
	if idx, err := s.dict.IndexOf(w); err == nil {
		res.Valid = true
		res.Index = idx
		res.Suggestion = w
		return res
	}
	res.Suggestion = s.dict.Nearest(w)
	return res
}

// WordAt returns the word at index, or ErrIndexOutOfRange.
func (s *Service) WordAt(index int) (string, error) {
	if index < 0 || index >= s.dict.Size() {
		return "", fmt.Errorf("service.WordAt: %d not in [0, %d]: %w", index, s.dict.Size()-1, ErrIndexOutOfRange)
	}
	return s.dict.WordAt(index), nil
}
