package merkle

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
)

// CachedProver memoizes proofs of recently requested leaves of one tree.
// It is safe for concurrent use.
type CachedProver struct {
	tree  *Tree
	cache *lru.Cache
}

// NewCachedProver returns a prover for tree that keeps up to size proofs.
func NewCachedProver(tree *Tree, size int) (*CachedProver, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("proof cache: %w", err)
	}
	return &CachedProver{tree: tree, cache: cache}, nil
}

// Tree returns the tree proofs are generated from.
func (p *CachedProver) Tree() *Tree {
	return p.tree
}

// Proof returns the same result as Tree.Proof.
func (p *CachedProver) Proof(leaf Hash) Proof {
	proof, _ := p.lookup(leaf)
	return proof
}

// ProveLeaf returns the same result as Tree.ProveLeaf.
func (p *CachedProver) ProveLeaf(leaf Hash) (Proof, error) {
	proof, found := p.lookup(leaf)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrLeafNotFound, leaf)
	}
	return proof, nil
}

type cachedProof struct {
	proof Proof
	found bool
}

func (p *CachedProver) lookup(leaf Hash) (Proof, bool) {
	key := string(leaf)
	if v, ok := p.cache.Get(key); ok {
		c := v.(cachedProof)
		return Proof(cloneHashes(c.proof)), c.found
	}

	c := cachedProof{proof: Proof{}}
	if index, ok := p.tree.Index(leaf); ok {
		c = cachedProof{proof: p.tree.proofAt(index), found: true}
	}
	p.cache.Add(key, c)
	return Proof(cloneHashes(c.proof)), c.found
}
