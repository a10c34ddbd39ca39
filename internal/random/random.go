// Package random provides the randomness used to draw share A.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

// ErrInvalidSample is returned when count distinct values cannot be drawn
// from [0, n).
var ErrInvalidSample = errors.New("random: invalid sample size")

// Source draws distinct indexes.
type Source interface {
	// Sample returns count distinct integers in [0, n) in random order.
	Sample(n, count int) ([]int, error)
}

// shuffler is a mutex-guarded generator implementing Source with a partial
// Fisher–Yates shuffle.
type shuffler struct {
	mu     sync.Mutex
	rng    *rand.Rand
	secure bool
}

// NewCrypto returns a Source backed by the operating system CSPRNG.
func NewCrypto() Source {
	return &shuffler{rng: rand.New(cryptoSource{}), secure: true}
}

// NewSeeded returns a deterministic Source. Two sources with the same seed
// produce the same samples. Not suitable for real secrets.
func NewSeeded(seed uint64) Source {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return &shuffler{rng: rand.New(rand.NewChaCha8(key))}
}

var defaultSource = sync.OnceValue(NewCrypto)

// Default returns the process-wide crypto Source. It is created on first use
// and reused afterwards.
func Default() Source { return defaultSource() }

// IsSecure reports whether src draws from the operating system CSPRNG.
func IsSecure(src Source) bool {
	s, ok := src.(*shuffler)
	return ok && s.secure
}

func (s *shuffler) Sample(n, count int) ([]int, error) {
	if n <= 0 || count < 0 || count > n {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidSample, count, n)
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range count {
		j := i + s.rng.IntN(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:count:count], nil
}

// cryptoSource adapts crypto/rand to rand.Source.
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var b [8]byte
	// crypto/rand.Read never returns an error; it crashes the program
	// irrecoverably if the OS entropy source fails.
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}
