// Package keccak provides a merkle.Hasher backed by legacy Keccak-256,
// the pre-standard SHA-3 variant used by Ethereum.
package keccak

import (
	"hash"
	"sync"

	"golang.org/x/crypto/sha3"

	merkle "github.com/estensen/sortedmerkle"
)

const HashSize = 32

var _ merkle.Hasher = Hasher{}

var hashPool = sync.Pool{
	New: func() interface{} {
		return sha3.NewLegacyKeccak256()
	},
}

func getHash() hash.Hash {
	return hashPool.Get().(hash.Hash)
}

func putHash(h hash.Hash) {
	h.Reset()
	hashPool.Put(h)
}

// Hasher is a merkle.Hasher computing Keccak-256 digests.
// It is safe for concurrent use.
type Hasher struct{}

func (Hasher) Sum(data []byte) merkle.Hash {
	h := getHash()
	defer putHash(h)

	_, _ = h.Write(data)
	return h.Sum(make([]byte, 0, HashSize))
}

func (Hasher) Size() int { return HashSize }
