// Package redaction masks seed material in free text such as log records.
package redaction

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/go-ports/seedsplit/internal/wordlist"
)

// MinRun is the shortest run of consecutive wordlist words treated as
// phrase material. Shorter runs occur naturally in English prose.
const MinRun = 4

const replacement = "[REDACTED]"

var tokenRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Redact replaces every run of at least minRun consecutive wordlist words,
// separated only by whitespace, with [REDACTED]. Matching ignores case.
func Redact(text string, dict *wordlist.Dictionary, minRun int) string {
	if minRun < 1 {
		minRun = 1
	}
	tokens := tokenRe.FindAllStringIndex(text, -1)
	if len(tokens) < minRun {
		return text
	}

	var b strings.Builder
	last := 0
	flush := func(run [][]int) {
		if len(run) < minRun {
			return
		}
		b.WriteString(text[last:run[0][0]])
		b.WriteString(replacement)
		last = run[len(run)-1][1]
	}

	var run [][]int
	for _, tok := range tokens {
		word := strings.ToLower(text[tok[0]:tok[1]])
		if !dict.Contains(word) {
			flush(run)
			run = run[:0]
			continue
		}
		if len(run) > 0 && strings.TrimSpace(text[run[len(run)-1][1]:tok[0]]) != "" {
			flush(run)
			run = run[:0]
		}
		run = append(run, tok)
	}
	flush(run)

	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// ReplaceAttr returns a slog.HandlerOptions.ReplaceAttr hook that applies
// Redact to every string and error attribute.
func ReplaceAttr(dict *wordlist.Dictionary, minRun int) func(groups []string, a slog.Attr) slog.Attr {
	return func(_ []string, a slog.Attr) slog.Attr {
		v := a.Value.Resolve()
		switch v.Kind() {
		case slog.KindString:
			return slog.String(a.Key, Redact(v.String(), dict, minRun))
		case slog.KindAny:
			if err, ok := v.Any().(error); ok {
				return slog.String(a.Key, Redact(err.Error(), dict, minRun))
			}
		}
		return a
	}
}
