// Copyright (c) 2024
//
// MIT License

package ddnnf

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// DumpText writes one line per node, in id order, of the shape
// `id [kind] children->[...]`, with ` *root*` after the kind of the root. It is a read-only debugging aid with no
// bearing on the canonical-form invariants, analogous to the teacher's
// print_string.
func DumpText(g *Graph, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for id := 0; id < g.NodeCount(); id++ {
		n := g.getNode(id)
		if n == nil {
			continue
		}
		label := n.kind.String()
		if n.IsLiteral() {
			label = fmt.Sprintf("LITERAL(%d)", n.lit)
		}
		root := ""
		if g.IsRoot(id) {
			root = " *root*"
		}
		fmt.Fprintf(tw, "%d\t[%s]%s\tchildren->%v\n", id, label, root, n.childSlice())
	}
	tw.Flush()
}

// DumpDOT writes a Graphviz DOT rendering of g: AND nodes as boxes, OR
// nodes as diamonds, literals and constants as plain labels, analogous to
// the teacher's PrintDot.
func DumpDOT(g *Graph, w io.Writer) {
	fmt.Fprintln(w, "digraph ddnnf {")
	for id := 0; id < g.NodeCount(); id++ {
		n := g.getNode(id)
		if n == nil {
			continue
		}
		switch n.kind {
		case KindAnd:
			fmt.Fprintf(w, "  %d [shape=box, label=\"AND\"];\n", id)
		case KindOr:
			fmt.Fprintf(w, "  %d [shape=diamond, label=\"OR\"];\n", id)
		case KindLiteral:
			fmt.Fprintf(w, "  %d [shape=plaintext, label=\"%d\"];\n", id, n.lit)
		case KindTrue:
			fmt.Fprintf(w, "  %d [shape=plaintext, label=\"TRUE\"];\n", id)
		case KindFalse:
			fmt.Fprintf(w, "  %d [shape=plaintext, label=\"FALSE\"];\n", id)
		}
		for _, c := range n.childSlice() {
			fmt.Fprintf(w, "  %d -> %d;\n", id, c)
		}
	}
	fmt.Fprintln(w, "}")
}
