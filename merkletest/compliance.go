// Package merkletest contains a test suite that every merkle.Hasher
// implementation is expected to pass.
package merkletest

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	merkle "github.com/estensen/sortedmerkle"
)

type HasherFactory func() merkle.Hasher

func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("sum is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()
		require.Equal(t, h.Sum([]byte("deterministic_data")), h.Sum([]byte("deterministic_data")))
		require.Equal(t, h.Sum([]byte("deterministic_data")), f().Sum([]byte("deterministic_data")))
	})

	t.Run("sum has fixed size", func(t *testing.T) {
		t.Parallel()

		h := f()
		for _, in := range [][]byte{nil, {}, []byte("a"), bytes.Repeat([]byte{0xAB}, 1000)} {
			require.Len(t, h.Sum(in), h.Size())
		}
	})

	t.Run("sum respects input", func(t *testing.T) {
		t.Parallel()

		h := f()
		require.NotEqual(t, h.Sum([]byte("hello")), h.Sum([]byte("hellp")))
		require.NotEqual(t, h.Sum([]byte("ab")), h.Sum([]byte("ba")))
	})

	t.Run("sum does not modify input", func(t *testing.T) {
		t.Parallel()

		h := f()
		in := []byte("do not touch")
		h.Sum(in)
		require.Equal(t, []byte("do not touch"), in)
	})

	t.Run("sum results do not share memory", func(t *testing.T) {
		t.Parallel()

		h := f()
		first := h.Sum([]byte("first"))
		want := bytes.Clone(first)
		h.Sum([]byte("second"))
		require.Equal(t, want, []byte(first))
	})

	t.Run("sum is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		h := f()
		want := make([]merkle.Hash, 64)
		for i := range want {
			want[i] = h.Sum([]byte(fmt.Sprint(i)))
		}

		got := make([]merkle.Hash, len(want))
		var wg sync.WaitGroup
		for i := range got {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got[i] = h.Sum([]byte(fmt.Sprint(i)))
			}()
		}
		wg.Wait()
		require.Equal(t, want, got)
	})

	t.Run("pair sums match sum of concatenation", func(t *testing.T) {
		t.Parallel()

		h := f()
		ph, ok := h.(merkle.PairHasher)
		if !ok {
			t.Skip("hasher does not implement merkle.PairHasher")
		}

		pairs := make([]merkle.Hash, 10)
		for i := range pairs {
			pairs[i] = h.Sum([]byte{byte(i)})
		}
		dst := make([]merkle.Hash, len(pairs)/2)
		ph.SumPairs(dst, pairs)

		for i := range dst {
			concat := append(bytes.Clone(pairs[2*i]), pairs[2*i+1]...)
			require.Equal(t, h.Sum(concat), dst[i], "pair %d", i)
		}
	})
}
