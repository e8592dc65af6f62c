package merkle

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
)

// Hash is a fixed-size digest produced by a Hasher.
// Hashes are ordered byte-wise.
type Hash []byte

// Hasher turns arbitrary bytes into a fixed-size Hash.
//
// Sum must be deterministic and must not retain data.
// When a tree is built with WithConcurrency, Sum must be safe
// to call from multiple goroutines.
type Hasher interface {
	Sum(data []byte) Hash
	Size() int
}

// PairHasher is an optional extension of Hasher for implementations that
// can hash many 2-node concatenations in a single call.
//
// SumPairs sets dst[i] = Sum(pairs[2i] || pairs[2i+1]) for every i.
// len(pairs) is always 2*len(dst).
type PairHasher interface {
	Hasher
	SumPairs(dst []Hash, pairs []Hash)
}

// HasherFunc adapts a plain digest function to the Hasher interface.
type HasherFunc struct {
	Fn     func(data []byte) []byte
	Length int
}

func (f HasherFunc) Sum(data []byte) Hash { return f.Fn(data) }

func (f HasherFunc) Size() int { return f.Length }

// Zero returns the default Hash of h: Size() zero bytes.
// It is the root of a tree with no leaves.
func Zero(h Hasher) Hash {
	return make(Hash, h.Size())
}

// HashFromBytes copies b into a Hash, checking it has the given size.
func HashFromBytes(b []byte, size int) (Hash, error) {
	if len(b) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidHashSize, len(b), size)
	}
	return bytes.Clone(b), nil
}

// ParseHash decodes a hex string, with or without the 0x prefix.
func ParseHash(s string) (Hash, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("parse hash %q: %w", s, err)
	}
	return b, nil
}

func (h Hash) Equal(other Hash) bool {
	return bytes.Equal(h, other)
}

// Compare returns -1, 0 or 1 depending on whether h sorts before,
// equal to or after other.
func (h Hash) Compare(other Hash) int {
	return bytes.Compare(h, other)
}

// IsZero reports whether every byte of h is zero.
func (h Hash) IsZero() bool {
	for _, b := range h {
		if b != 0 {
			return false
		}
	}
	return true
}

// Bytes returns a copy of the raw digest.
func (h Hash) Bytes() []byte {
	return bytes.Clone(h)
}

// String returns the 0x-prefixed hex encoding of h.
func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h)
}

func (h Hash) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Hash) UnmarshalText(text []byte) error {
	parsed, err := ParseHash(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// hashPair sorts a and b and hashes their concatenation, so the result
// does not depend on which of the two was on the left.
func hashPair(h Hasher, a, b Hash) Hash {
	lo, hi := sortPair(a, b)
	buf := make([]byte, 0, len(lo)+len(hi))
	buf = append(buf, lo...)
	buf = append(buf, hi...)
	return h.Sum(buf)
}

func sortPair(a, b Hash) (Hash, Hash) {
	if b.Compare(a) < 0 {
		return b, a
	}
	return a, b
}
