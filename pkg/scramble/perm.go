package scramble

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrInvalidInput is returned when a buffer doesn't match the length the
	// operation was prepared for. No partial transform is ever produced.
	ErrInvalidInput = errors.New("invalid input")
)

// Permutation is a bijective reordering of buffer indices.
// Every index in [0, len) appears exactly once.
type Permutation []int

// GeneratePermutation deterministically produces a permutation of [0, length)
// from seed, using a fresh generator per call so there is no shared state
// between operations.
//
// The generator is the math/rand default source, whose output stream for a
// given seed is frozen by the Go 1 compatibility promise, and Perm is its
// standard uniform swap shuffle. Identical (seed, length) pairs yield the
// identical permutation across runs, platforms, and Go releases.
func GeneratePermutation(seed uint64, length int) Permutation {
	rng := rand.New(rand.NewSource(int64(seed)))
	return Permutation(rng.Perm(length))
}

// Invert produces the permutation that exactly undoes p, such that
// inv[p[i]] == i for every index. It is constructed directly from p in a
// single pass rather than re-derived from any seed.
func (p Permutation) Invert() Permutation {
	inv := make(Permutation, len(p))
	for i, j := range p {
		inv[j] = i
	}
	return inv
}

// Apply reorders buf into a new buffer using the scatter convention:
// out[p[i]] = buf[i]. Pairing Apply(p) with Apply(p.Invert()) restores the
// original buffer.
//
// The permutation and buffer lengths must match exactly, otherwise
// ErrInvalidInput is returned and buf is untouched.
func (p Permutation) Apply(buf []byte) ([]byte, error) {
	if len(p) != len(buf) {
		return nil, fmt.Errorf("%w: permutation of length %d applied to buffer of length %d", ErrInvalidInput, len(p), len(buf))
	}
	out := make([]byte, len(buf))
	for i, j := range p {
		out[j] = buf[i]
	}
	return out, nil
}
