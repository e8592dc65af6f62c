package merkle

import (
	"fmt"
	"io"
	"strings"
)

// String renders the tree as an indented ASCII diagram, root first.
func (m *Tree) String() string {
	var sb strings.Builder
	_ = m.Render(&sb)
	return sb.String()
}

// PrintTree writes the diagram to standard output.
func (m *Tree) PrintTree() {
	fmt.Print(m.String())
}

// renderFrame is one pending node of the diagram:
// the node at layers[layer][index].
type renderFrame struct {
	layer, index int
	prefix       string
	last         bool
	top          bool
}

// Render writes an ASCII diagram of the tree to w.
//
// Node i of layer l has the children 2i and 2i+1 of layer l-1; a node that
// was carried from an odd layer shows its single child, which has the same
// hash. The traversal uses an explicit stack so deep trees do not recurse.
func (m *Tree) Render(w io.Writer) error {
	if len(m.layers) == 0 {
		_, err := io.WriteString(w, "Empty tree\n")
		return err
	}

	stack := []renderFrame{{layer: len(m.layers) - 1, top: true}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		hash := m.layers[f.layer][f.index].String()
		var line, childPrefix string
		switch {
		case f.top:
			line = hash
		case f.last:
			line = f.prefix + "└── " + hash
			childPrefix = f.prefix + "    "
		default:
			line = f.prefix + "├── " + hash
			childPrefix = f.prefix + "│   "
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}

		if f.layer == 0 {
			continue
		}
		below := m.layers[f.layer-1]
		left, right := 2*f.index, 2*f.index+1
		// Push right first so the left child is written first.
		if right < len(below) {
			stack = append(stack, renderFrame{layer: f.layer - 1, index: right, prefix: childPrefix, last: true})
		}
		stack = append(stack, renderFrame{layer: f.layer - 1, index: left, prefix: childPrefix, last: right >= len(below)})
	}
	return nil
}
