// Package sha2 provides a merkle.Hasher backed by SHA-256.
//
// Pairs of nodes are hashed in batches with gohashtree, which uses the
// vectorized SHA-256 instructions of the CPU when they are available.
package sha2

import (
	"crypto/sha256"

	"github.com/prysmaticlabs/gohashtree"

	merkle "github.com/estensen/sortedmerkle"
)

const HashSize = sha256.Size

var _ merkle.PairHasher = Hasher{}

// Hasher is a merkle.PairHasher computing SHA-256 digests.
// It is safe for concurrent use.
type Hasher struct{}

func (Hasher) Sum(data []byte) merkle.Hash {
	sum := sha256.Sum256(data)
	return sum[:]
}

func (Hasher) Size() int { return HashSize }

// SumPairs hashes every concatenated pair in one gohashtree call.
// Pairs whose nodes are not HashSize bytes long fall back to Sum.
func (h Hasher) SumPairs(dst []merkle.Hash, pairs []merkle.Hash) {
	if len(dst) == 0 {
		return
	}
	for _, node := range pairs {
		if len(node) != HashSize {
			h.sumPairsSlow(dst, pairs)
			return
		}
	}

	chunks := make([][32]byte, len(pairs))
	for i, node := range pairs {
		copy(chunks[i][:], node)
	}
	digests := make([][32]byte, len(dst))
	if err := gohashtree.Hash(digests, chunks); err != nil {
		h.sumPairsSlow(dst, pairs)
		return
	}
	for i := range digests {
		dst[i] = digests[i][:]
	}
}

func (h Hasher) sumPairsSlow(dst []merkle.Hash, pairs []merkle.Hash) {
	for i := range dst {
		left, right := pairs[2*i], pairs[2*i+1]
		buf := make([]byte, 0, len(left)+len(right))
		buf = append(buf, left...)
		buf = append(buf, right...)
		dst[i] = h.Sum(buf)
	}
}
