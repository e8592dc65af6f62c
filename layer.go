package merkle

import (
	"golang.org/x/sync/errgroup"
)

// minPairsPerWorker keeps small layers on the calling goroutine.
const minPairsPerWorker = 256

// nextLayer derives the parent layer of nodes.
// Full pairs are hashed with hashPair; a trailing unpaired node is carried
// into the parent layer as is, without being hashed with itself.
func nextLayer(h Hasher, nodes []Hash, concurrency int) []Hash {
	parents := make([]Hash, (len(nodes)+1)/2)
	paired := len(nodes) &^ 1

	numPairs := paired / 2
	if concurrency < 2 || numPairs <= minPairsPerWorker {
		hashPairsInto(h, parents[:numPairs], nodes[:paired])
	} else {
		chunk := (numPairs + concurrency - 1) / concurrency
		if chunk < minPairsPerWorker {
			chunk = minPairsPerWorker
		}

		var g errgroup.Group
		g.SetLimit(concurrency)
		for start := 0; start < numPairs; start += chunk {
			end := min(start+chunk, numPairs)
			dst, src := parents[start:end], nodes[2*start:2*end]
			g.Go(func() error {
				hashPairsInto(h, dst, src)
				return nil
			})
		}
		// Nothing returns an error; Wait is the layer barrier.
		_ = g.Wait()
	}

	if paired < len(nodes) {
		parents[len(parents)-1] = nodes[len(nodes)-1]
	}
	return parents
}

// hashPairsInto sets dst[i] to the sorted-pair hash of src[2i] and src[2i+1].
func hashPairsInto(h Hasher, dst []Hash, src []Hash) {
	if len(dst) == 0 {
		return
	}

	ph, ok := h.(PairHasher)
	if !ok {
		for i := range dst {
			dst[i] = hashPair(h, src[2*i], src[2*i+1])
		}
		return
	}

	sorted := make([]Hash, len(src))
	for i := 0; i < len(src); i += 2 {
		sorted[i], sorted[i+1] = sortPair(src[i], src[i+1])
	}
	ph.SumPairs(dst, sorted)
}
