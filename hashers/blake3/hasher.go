// Package blake3 provides a merkle.Hasher backed by 256-bit BLAKE3.
package blake3

import (
	zb3 "github.com/zeebo/blake3"

	merkle "github.com/estensen/sortedmerkle"
)

const HashSize = 32

var _ merkle.Hasher = Hasher{}

type Hasher struct{}

func (Hasher) Sum(data []byte) merkle.Hash {
	sum := zb3.Sum256(data)
	return sum[:]
}

func (Hasher) Size() int { return HashSize }
