// Package validate checks word sequences before they reach the split/rebuild
// transform. All diagnostics are returned as values; nothing is printed.
package validate

import (
	"errors"
	"fmt"

	"github.com/go-ports/seedsplit/internal/wordlist"
)

// Phrase length bounds accepted at the external surfaces.
const (
	MinWords = 12
	MaxWords = 24
)

var (
	ErrUnknownWord    = errors.New("unknown word")
	ErrLengthMismatch = errors.New("share length mismatch")
	ErrPhraseLength   = errors.New("invalid phrase length")
)

// UnknownWordError reports the first word that is not in the dictionary,
// together with the closest dictionary entry.
type UnknownWordError struct {
	Word       string
	Position   int // zero-based
	Suggestion string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("word %q is not in the wordlist; did you mean %q?", e.Word, e.Suggestion)
}

func (e *UnknownWordError) Is(target error) bool { return target == ErrUnknownWord }

// LengthMismatchError reports two shares with different word counts.
type LengthMismatchError struct {
	LenA int
	LenB int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("shares must have the same number of words: share A has %d words and share B has %d words", e.LenA, e.LenB)
}

func (e *LengthMismatchError) Is(target error) bool { return target == ErrLengthMismatch }

// PhraseLengthError reports a sequence outside the accepted word-count range.
type PhraseLengthError struct {
	Len int
	Min int
	Max int
}

func (e *PhraseLengthError) Error() string {
	return fmt.Sprintf("phrase must have between %d and %d words, got %d", e.Min, e.Max, e.Len)
}

func (e *PhraseLengthError) Is(target error) bool { return target == ErrPhraseLength }

// Validator checks sequences against a dictionary.
type Validator struct {
	dict     *wordlist.Dictionary
	minWords int
	maxWords int
}

// New returns a Validator using the default 12..24 word bounds.
func New(dict *wordlist.Dictionary) *Validator {
	return &Validator{dict: dict, minWords: MinWords, maxWords: MaxWords}
}

// WithBounds returns a copy of v that accepts phrases of min..max words.
func (v *Validator) WithBounds(minWords, maxWords int) *Validator {
	cp := *v
	cp.minWords, cp.maxWords = minWords, maxWords
	return &cp
}

// CheckMembership fails with *UnknownWordError on the first word that is not
// in the dictionary. Repeated words are not its concern.
func (v *Validator) CheckMembership(seq []string) error {
	for i, w := range seq {
		if !v.dict.Contains(w) {
			return &UnknownWordError{Word: w, Position: i, Suggestion: v.dict.Nearest(w)}
		}
	}
	return nil
}

// CheckUniqueness reports whether every word in seq occurs once. A false
// result is advisory.
func (v *Validator) CheckUniqueness(seq []string) bool {
	return len(Duplicates(seq)) == 0
}

// CheckLengthMatch fails with *LengthMismatchError when a and b differ in length.
func (v *Validator) CheckLengthMatch(a, b []string) error {
	if len(a) != len(b) {
		return &LengthMismatchError{LenA: len(a), LenB: len(b)}
	}
	return nil
}

// CheckPhraseLength fails with *PhraseLengthError when seq is outside the
// validator's word-count bounds.
func (v *Validator) CheckPhraseLength(seq []string) error {
	if len(seq) < v.minWords || len(seq) > v.maxWords {
		return &PhraseLengthError{Len: len(seq), Min: v.minWords, Max: v.maxWords}
	}
	return nil
}

// Duplicates returns each word that occurs more than once, in order of its
// second occurrence.
func Duplicates(seq []string) []string {
	seen := make(map[string]int, len(seq))
	var dups []string
	for _, w := range seq {
		seen[w]++
		if seen[w] == 2 {
			dups = append(dups, w)
		}
	}
	return dups
}
