// Package blake2b provides a merkle.Hasher backed by BLAKE2b-256.
package blake2b

import (
	simd "github.com/minio/blake2b-simd"

	merkle "github.com/estensen/sortedmerkle"
)

const HashSize = 32

var _ merkle.Hasher = Hasher{}

// Hasher is a merkle.Hasher computing unkeyed BLAKE2b-256 digests.
type Hasher struct{}

func (Hasher) Sum(data []byte) merkle.Hash {
	sum := simd.Sum256(data)
	return sum[:]
}

func (Hasher) Size() int { return HashSize }
