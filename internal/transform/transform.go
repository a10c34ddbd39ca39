// Package transform implements the 2-of-2 additive split over dictionary
// indexes and its inverse.
//
// For every position i the three sequences satisfy
//
//	index(secret[i]) ≡ index(a[i]) + index(b[i])  (mod 2048)
//
// so Rebuild(Split(s)) == s holds for any draw of share A.
package transform

import (
	"fmt"

	"github.com/go-ports/seedsplit/internal/share"
	"github.com/go-ports/seedsplit/internal/validate"
	"github.com/go-ports/seedsplit/internal/wordlist"
)

// Mod returns a mod m in [0, m) for any sign of a. m must be positive.
func Mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// SplitIndexes returns the share B indexes (secret − a) mod 2048.
func SplitIndexes(secret, a []int) []int {
	b := make([]int, len(secret))
	for i := range secret {
		b[i] = Mod(secret[i]-a[i], wordlist.Size)
	}
	return b
}

// RebuildIndexes returns the secret indexes (a + b) mod 2048.
func RebuildIndexes(a, b []int) []int {
	secret := make([]int, len(a))
	for i := range a {
		secret[i] = Mod(a[i]+b[i], wordlist.Size)
	}
	return secret
}

// Transformer splits and rebuilds word sequences.
type Transformer struct {
	dict *wordlist.Dictionary
	gen  *share.Generator
}

// New returns a Transformer over dict drawing share A from gen.
func New(dict *wordlist.Dictionary, gen *share.Generator) *Transformer {
	return &Transformer{dict: dict, gen: gen}
}

// Split draws a fresh share A of the secret's length and derives share B.
// The secret must already have passed membership validation; an unknown word
// is reported as an error and no share is returned.
func (t *Transformer) Split(secret []string) (a, b []string, err error) {
	secretIdx, err := t.dict.IndexesOf(secret)
	if err != nil {
		return nil, nil, fmt.Errorf("transform.Split: %w", err)
	}
	a, err = t.gen.Generate(len(secret))
	if err != nil {
		return nil, nil, fmt.Errorf("transform.Split: %w", err)
	}
	aIdx, err := t.dict.IndexesOf(a)
	if err != nil {
		return nil, nil, fmt.Errorf("transform.Split: %w", err)
	}
	return a, t.dict.WordsAt(SplitIndexes(secretIdx, aIdx)), nil
}

// Rebuild combines two shares of equal length back into the secret.
func (t *Transformer) Rebuild(a, b []string) ([]string, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("transform.Rebuild: %w", &validate.LengthMismatchError{LenA: len(a), LenB: len(b)})
	}
	aIdx, err := t.dict.IndexesOf(a)
	if err != nil {
		return nil, fmt.Errorf("transform.Rebuild: share A: %w", err)
	}
	bIdx, err := t.dict.IndexesOf(b)
	if err != nil {
		return nil, fmt.Errorf("transform.Rebuild: share B: %w", err)
	}
	return t.dict.WordsAt(RebuildIndexes(aIdx, bIdx)), nil
}
