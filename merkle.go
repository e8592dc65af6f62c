package merkle

import (
	"errors"
	"slices"
)

var (
	ErrLeafNotFound    = errors.New("leaf not found in the tree")
	ErrInvalidHashSize = errors.New("invalid hash size")
	ErrMalformedProof  = errors.New("malformed proof encoding")
)

// Tree represents a Merkle tree over a sorted set of leaf hashes.
//
// A Tree is never modified after NewTree returns, so it is safe for
// concurrent use. Accessors return copies.
type Tree struct {
	hasher Hasher
	leaves []Hash
	// layers[0] is leaves; the last layer holds only the root.
	layers [][]Hash
}

// NewTree hashes the given values, sorts the hashes and builds every layer
// up to the root.
//
// Pairs are sorted before they are hashed, and an unpaired trailing node is
// carried unchanged to the next layer. Equal values are kept as separate
// leaves. NewTree accepts an empty list; the resulting tree has no layers
// and its root is Zero(h).
func NewTree(values [][]byte, h Hasher, opts ...Option) *Tree {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	leaves := make([]Hash, len(values))
	for i, val := range values {
		leaves[i] = h.Sum(val)
	}
	slices.SortStableFunc(leaves, Hash.Compare)

	tree := &Tree{
		hasher: h,
		leaves: leaves,
	}
	if len(leaves) == 0 {
		o.log.Debug("Built empty tree")
		return tree
	}

	tree.layers = [][]Hash{leaves}
	nodes := leaves
	for len(nodes) > 1 {
		nodes = nextLayer(h, nodes, o.concurrency)
		tree.layers = append(tree.layers, nodes)
		o.log.Debug("Built layer", "layer", len(tree.layers)-1, "size", len(nodes))
	}

	o.log.Debug(
		"Built tree",
		"leaves", len(leaves),
		"height", len(tree.layers),
		"root", tree.Root(),
	)
	return tree
}

// Hasher returns the hasher the tree was built with.
func (m *Tree) Hasher() Hasher {
	return m.hasher
}

// Root returns the single hash of the top layer,
// or Zero of the tree's hasher when there are no leaves.
func (m *Tree) Root() Hash {
	if len(m.layers) == 0 {
		return Zero(m.hasher)
	}
	top := m.layers[len(m.layers)-1]
	return top[0].Bytes()
}

// Leaves returns the leaf hashes in ascending order.
func (m *Tree) Leaves() []Hash {
	return cloneHashes(m.leaves)
}

// Len returns the number of leaves, counting duplicates.
func (m *Tree) Len() int {
	return len(m.leaves)
}

// Height returns the number of layers, including the leaf layer.
func (m *Tree) Height() int {
	return len(m.layers)
}

// Layers returns every layer from the leaves up to the root.
func (m *Tree) Layers() [][]Hash {
	layers := make([][]Hash, len(m.layers))
	for i, layer := range m.layers {
		layers[i] = cloneHashes(layer)
	}
	return layers
}

// HexLayers returns the layers as 0x-prefixed hex strings.
func (m *Tree) HexLayers() [][]string {
	layers := make([][]string, len(m.layers))
	for i, layer := range m.layers {
		layers[i] = make([]string, len(layer))
		for j, h := range layer {
			layers[i][j] = h.String()
		}
	}
	return layers
}

func cloneHashes(hashes []Hash) []Hash {
	out := make([]Hash, len(hashes))
	for i, h := range hashes {
		out[i] = h.Bytes()
	}
	return out
}
