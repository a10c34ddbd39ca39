// Package wordlist holds the fixed 2048-word dictionary that maps mnemonic
// words to their index in [0, 2047] and back.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	bip39 "github.com/vcvvvc/go-wallet-sdk/crypto/go-bip39"
)

// Size is the number of entries every dictionary must have.
const Size = 2048

var (
	ErrNotFound      = errors.New("word not in wordlist")
	ErrWrongSize     = errors.New("wordlist must contain exactly 2048 words")
	ErrDuplicateWord = errors.New("wordlist contains a duplicate word")
	ErrEmptyWord     = errors.New("wordlist contains an empty entry")
)

// Dictionary is an immutable bijection between words and indexes.
// It is safe for concurrent use once constructed.
type Dictionary struct {
	words []string
	index map[string]int
}

// New builds a Dictionary from an ordered list of words. The slice is copied,
// so later changes to words do not affect the dictionary.
func New(words []string) (*Dictionary, error) {
	if len(words) != Size {
		return nil, fmt.Errorf("wordlist.New: got %d words: %w", len(words), ErrWrongSize)
	}
	d := &Dictionary{
		words: make([]string, Size),
		index: make(map[string]int, Size),
	}
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("wordlist.New: position %d: %w", i, ErrEmptyWord)
		}
		if prev, dup := d.index[w]; dup {
			return nil, fmt.Errorf("wordlist.New: %q at %d and %d: %w", w, prev, i, ErrDuplicateWord)
		}
		d.words[i] = w
		d.index[w] = i
	}
	return d, nil
}

var english = sync.OnceValue(func() *Dictionary {
	d, err := New(bip39.GetWordList())
	if err != nil {
		panic("wordlist: built-in BIP39 English list is invalid: " + err.Error())
	}
	return d
})

// English returns the BIP39 English dictionary. It is built on first use and
// shared by every caller afterwards.
func English() *Dictionary { return english() }

// IsEnglish reports whether d has the same ordering as the BIP39 English list.
func IsEnglish(d *Dictionary) bool {
	if d == english() {
		return true
	}
	en := english()
	for i, w := range d.words {
		if en.words[i] != w {
			return false
		}
	}
	return true
}

// Load reads a custom dictionary, one word per line. Blank lines and lines
// starting with # are skipped; words are lowercased.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist.Load: %w", err)
	}
	defer f.Close()

	words := make([]string, 0, Size)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.ToLower(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist.Load: %w", err)
	}

	d, err := New(words)
	if err != nil {
		return nil, fmt.Errorf("wordlist.Load: %s: %w", path, err)
	}
	return d, nil
}

// ---------------------------------------------------------------------------
// Lookups
// ---------------------------------------------------------------------------

// Size returns the number of words, always 2048.
func (d *Dictionary) Size() int { return len(d.words) }

// Contains reports whether word is a dictionary entry.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.index[word]
	return ok
}

// IndexOf returns the position of word, or ErrNotFound.
func (d *Dictionary) IndexOf(word string) (int, error) {
	i, ok := d.index[word]
	if !ok {
		return 0, fmt.Errorf("%q: %w", word, ErrNotFound)
	}
	return i, nil
}

// WordAt returns the word at index. It panics if index is outside [0, 2047];
// validated input never reaches that path.
func (d *Dictionary) WordAt(index int) string {
	return d.words[index]
}

// IndexesOf maps every word to its index, failing on the first unknown word.
func (d *Dictionary) IndexesOf(words []string) ([]int, error) {
	out := make([]int, len(words))
	for i, w := range words {
		idx, err := d.IndexOf(w)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

// WordsAt maps every index back to its word.
func (d *Dictionary) WordsAt(indexes []int) []string {
	out := make([]string, len(indexes))
	for i, idx := range indexes {
		out[i] = d.words[idx]
	}
	return out
}

// Words returns a copy of the ordered word list.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// Nearest returns the entry with the smallest Levenshtein distance to word.
// Ties go to the entry that comes first in dictionary order.
func (d *Dictionary) Nearest(word string) string {
	best, bestDist := 0, -1
	for i, w := range d.words {
		dist := levenshtein.ComputeDistance(word, w)
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
			if dist == 0 {
				break
			}
		}
	}
	return d.words[best]
}
