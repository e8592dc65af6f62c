package merkle

import (
	"fmt"
	"slices"
)

// Proof is the chain of sibling hashes from a leaf towards the root.
type Proof []Hash

// Hex returns the proof nodes as 0x-prefixed hex strings.
func (p Proof) Hex() []string {
	out := make([]string, len(p))
	for i, h := range p {
		out[i] = h.String()
	}
	return out
}

// Index returns the position of leaf among the sorted leaves.
// When the leaf occurs more than once the lowest position is returned.
func (m *Tree) Index(leaf Hash) (int, bool) {
	return slices.BinarySearchFunc(m.leaves, leaf, Hash.Compare)
}

// Proof generates an inclusion proof for the given leaf hash.
//
// A leaf that is not in the tree yields an empty proof, which is the same
// result as the only leaf of a single-leaf tree. Use ProveLeaf to tell the
// two apart.
func (m *Tree) Proof(leaf Hash) Proof {
	index, ok := m.Index(leaf)
	if !ok {
		return Proof{}
	}
	return m.proofAt(index)
}

// ProveLeaf is like Proof but returns ErrLeafNotFound for an absent leaf.
func (m *Tree) ProveLeaf(leaf Hash) (Proof, error) {
	index, ok := m.Index(leaf)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLeafNotFound, leaf)
	}
	return m.proofAt(index), nil
}

// proofAt walks the layers from the bottom, collecting the sibling at each
// level. A node carried up from an odd layer has no sibling there and adds
// nothing to the proof.
func (m *Tree) proofAt(index int) Proof {
	proof := Proof{}
	for _, layer := range m.layers {
		sibling := index + 1
		if index%2 == 1 {
			sibling = index - 1
		}
		if sibling < len(layer) {
			proof = append(proof, layer[sibling].Bytes())
		}
		index /= 2
	}
	return proof
}

// VerifyProof checks proof for leaf against the tree's own root.
func (m *Tree) VerifyProof(proof Proof, leaf Hash) bool {
	return Verify(m.hasher, proof, leaf, m.Root())
}

// Verify recomputes a root from leaf and proof and reports whether it
// equals root. Each step hashes the sorted pair of the running hash and the
// next proof node, as the tree does when it is built.
//
// With an empty proof, Verify reports whether leaf equals root. In
// particular an empty proof verifies Zero(h) against the root of an empty
// tree.
func Verify(h Hasher, proof Proof, leaf, root Hash) bool {
	current := leaf
	for _, node := range proof {
		current = hashPair(h, current, node)
	}
	return current.Equal(root)
}
