package mindmap

import (
	"bytes"
	"fmt"
	"strings"
)

// ToDOT converts a graph to Graphviz DOT source. The layout flows left to
// right, the shape a mind map reads best in. The resulting string can be
// rendered with [github.com/jhartweg/mindweave/pkg/render] or fed to external
// Graphviz tooling.
func ToDOT(g *Graph) string {
	var buf bytes.Buffer
	buf.WriteString("digraph MindMap {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  fontsize=12;\n")
	buf.WriteString("  fontname=\"Helvetica\";\n")
	buf.WriteString("  node [fontname=\"Helvetica\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(nodeAttrs(n), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n *Node) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", n.Label),
		"style=filled",
		fmt.Sprintf("fillcolor=%q", n.FillColor),
	}
	if n.Shape != "" {
		attrs = append(attrs, fmt.Sprintf("shape=%s", n.Shape))
	}
	return attrs
}
