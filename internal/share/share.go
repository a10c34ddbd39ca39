// Package share draws the random share used as the first half of a split.
package share

import (
	"errors"
	"fmt"

	"github.com/go-ports/seedsplit/internal/random"
	"github.com/go-ports/seedsplit/internal/wordlist"
)

var (
	ErrLengthExceedsDictionary = errors.New("share length exceeds dictionary size")
	ErrInvalidLength           = errors.New("share length must be positive")
)

// Generator produces random shares over a dictionary.
type Generator struct {
	dict *wordlist.Dictionary
	src  random.Source
}

// New returns a Generator. A nil src falls back to random.Default().
func New(dict *wordlist.Dictionary, src random.Source) *Generator {
	if src == nil {
		src = random.Default()
	}
	return &Generator{dict: dict, src: src}
}

// Generate returns length distinct dictionary words drawn uniformly without
// replacement.
func (g *Generator) Generate(length int) ([]string, error) {
	if length < 1 {
		return nil, fmt.Errorf("share.Generate: %d: %w", length, ErrInvalidLength)
	}
	if length > g.dict.Size() {
		return nil, fmt.Errorf("share.Generate: %d > %d: %w", length, g.dict.Size(), ErrLengthExceedsDictionary)
	}
	idx, err := g.src.Sample(g.dict.Size(), length)
	if err != nil {
		return nil, fmt.Errorf("share.Generate: %w", err)
	}
	return g.dict.WordsAt(idx), nil
}
