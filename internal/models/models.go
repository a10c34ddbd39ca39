// Package models defines the result types shared by the service, the CLI and
// the MCP server.
package models

import (
	"fmt"
	"strings"
)

// Warning kinds.
const (
	WarnDuplicateWords = "duplicate_words"
	WarnChecksum       = "checksum"
	WarnInsecureRandom = "insecure_random"
)

// Warning is an advisory diagnostic. It never blocks an operation.
type Warning struct {
	Kind    string `json:"kind" yaml:"kind"`
	Message string `json:"message" yaml:"message"`
}

func (w Warning) String() string { return w.Message }

// SharePair is one (A, B) split of a phrase. Either share alone is
// meaningless; both together rebuild the phrase.
type SharePair struct {
	A []string `json:"a" yaml:"a"`
	B []string `json:"b" yaml:"b"`
}

// SplitResult is returned from Service.Split. Each pair is an independent
// split of the same phrase.
type SplitResult struct {
	Pairs    []SharePair `json:"pairs" yaml:"pairs"`
	Warnings []Warning   `json:"warnings" yaml:"warnings"`
}

// RebuildResult is returned from Service.Rebuild.
type RebuildResult struct {
	Phrase   []string  `json:"phrase" yaml:"phrase"`
	Warnings []Warning `json:"warnings" yaml:"warnings"`
}

// SuggestResult is returned from Service.Suggest.
type SuggestResult struct {
	Word       string `json:"word" yaml:"word"`
	Valid      bool   `json:"valid" yaml:"valid"`
	Index      int    `json:"index" yaml:"index"` // -1 when not valid
	Suggestion string `json:"suggestion" yaml:"suggestion"`
}

// DuplicateWarning builds the warning for a sequence with repeated words.
// label names the sequence ("phrase", "share A", …).
func DuplicateWarning(label string, dups []string) Warning {
	return Warning{
		Kind: WarnDuplicateWords,
		Message: fmt.Sprintf(
			"Found repeated words in %s (%s). Verify that all the provided words are correct.",
			label, strings.Join(dups, ", "),
		),
	}
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// Join renders a word sequence as a single space-separated line.
func Join(words []string) string { return strings.Join(words, " ") }
