package trie

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/constraints"
)

// Dump writes a tree-shaped rendering of t to w, in the same spirit as
// the teacher's DebugDump: one line per node, arcs show their prefix
// and optional value, branches show their mask.
func (t Trie[E, V]) Dump(w io.Writer) {
	dump(w, t.root, "T:", "")
}

func dump[E constraints.Unsigned, V any](w io.Writer, n *node[E, V], tag, indent string) {
	if n == nil {
		fmt.Fprintf(w, "%s%s EMPTY\n", indent, tag)
		return
	}
	if !n.isBranch {
		if n.value != nil {
			fmt.Fprintf(w, "%s%s ARC prefix=%v val=%v\n", indent, tag, n.prefix, *n.value)
		} else {
			fmt.Fprintf(w, "%s%s ARC prefix=%v\n", indent, tag, n.prefix)
		}
		dump(w, n.child, "C:", indent+"  ")
		return
	}
	fmt.Fprintf(w, "%s%s BRANCH prefix=%v mask=%0*b\n", indent, tag, n.commonPrefix, bitWidth[E](), n.mask)
	dump(w, n.left, "L:", indent+"  ")
	dump(w, n.right, "R:", indent+"  ")
}

func bitWidth[E constraints.Unsigned]() int {
	var e E
	switch any(e).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		return 64
	}
}

// String renders t the same way Dump does, for use in %v/%s formatting
// and test failure messages.
func (t Trie[E, V]) String() string {
	var b strings.Builder
	t.Dump(&b)
	return b.String()
}
