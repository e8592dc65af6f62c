package merkle_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	merkle "github.com/estensen/sortedmerkle"
)

func TestRender(t *testing.T) {
	t.Parallel()

	tree := merkle.NewTree(leavesOf("a", "b", "c"), hasher)
	layers := tree.Layers()
	l, p := layers[0], layers[1]

	want := strings.Join([]string{
		tree.Root().String(),
		"├── " + p[0].String(),
		"│   ├── " + l[0].String(),
		"│   └── " + l[1].String(),
		"└── " + p[1].String(),
		"    └── " + l[2].String(),
		"",
	}, "\n")
	require.Equal(t, want, tree.String())
}

func TestRenderSmallTrees(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Empty tree\n", merkle.NewTree(nil, hasher).String())

	single := merkle.NewTree(leavesOf("a"), hasher)
	require.Equal(t, single.Root().String()+"\n", single.String())
}

func TestRenderLargeTree(t *testing.T) {
	t.Parallel()

	values := make([][]byte, 1025)
	for i := range values {
		values[i] = []byte{byte(i), byte(i >> 8)}
	}
	tree := merkle.NewTree(values, hasher)

	lines := strings.Split(strings.TrimSuffix(tree.String(), "\n"), "\n")
	total := 0
	for _, layer := range tree.Layers() {
		total += len(layer)
	}
	require.Len(t, lines, total)
	require.Equal(t, tree.Root().String(), lines[0])
}
