package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// Colors used for the shortest-path overlay.
const (
	colorTree        = "#d62828"
	colorSource      = "#d8f3dc"
	colorUnreachable = "#adb5bd"
)

// Options configures diagram rendering.
type Options struct {
	// Weights labels every edge with its weight.
	Weights bool
}

// ToDOT converts g to Graphviz DOT. Removed nodes are omitted.
//
// When res is non-nil each node label carries its distance, unreachable
// nodes are greyed out, and the edges of the shortest-path tree (one per
// reached node, from its predecessor) are drawn in red. res must come from a
// run over g itself.
func ToDOT(g *core.Graph, res *dijkstra.Result, opts Options) string {
	kind, arrow := "graph", "--"
	if g.Directed() {
		kind, arrow = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	for _, id := range g.Nodes() {
		fmt.Fprintf(&buf, "  %d [%s];\n", id, nodeAttrs(id, res))
	}

	buf.WriteString("\n")
	tree := make(map[int]bool)
	for _, l := range g.Links() {
		attrs := edgeAttrs(l, res, tree, g.Directed(), opts)
		if attrs == "" {
			fmt.Fprintf(&buf, "  %d %s %d;\n", l.From, arrow, l.To)
			continue
		}
		fmt.Fprintf(&buf, "  %d %s %d [%s];\n", l.From, arrow, l.To, attrs)
	}

	buf.WriteString("}\n")

	return buf.String()
}

func nodeAttrs(id int, res *dijkstra.Result) string {
	if res == nil {
		return fmt.Sprintf("label=%q", fmt.Sprint(id))
	}

	d, _ := res.Distance(id)
	switch {
	case id == res.Source():
		return fmt.Sprintf("label=\"%d\\n%d\", shape=doublecircle, fillcolor=%q", id, d, colorSource)
	case d == dijkstra.Unreachable:
		return fmt.Sprintf("label=\"%d\\n∞\", style=\"filled,dashed\", fontcolor=%q", id, colorUnreachable)
	default:
		return fmt.Sprintf("label=\"%d\\n%d\"", id, d)
	}
}

// edgeAttrs formats the attribute list of l and records tree membership.
// tree tracks children whose tree edge has already been drawn, so only one of
// several parallel candidates is highlighted.
func edgeAttrs(l core.Link, res *dijkstra.Result, tree map[int]bool, directed bool, opts Options) string {
	var attrs []string
	if opts.Weights {
		attrs = append(attrs, fmt.Sprintf("label=\"%d\"", l.Weight))
	}
	if res != nil {
		if child, ok := treeChild(l, res, directed); ok && !tree[child] {
			tree[child] = true
			attrs = append(attrs, fmt.Sprintf("color=%q", colorTree), "penwidth=2")
		}
	}

	return strings.Join(attrs, ", ")
}

// treeChild reports whether l is the edge through which a node was reached,
// and returns that node.
func treeChild(l core.Link, res *dijkstra.Result, directed bool) (int, bool) {
	if isTreeEdge(res, l.From, l.To, l.Weight) {
		return l.To, true
	}
	if !directed && isTreeEdge(res, l.To, l.From, l.Weight) {
		return l.From, true
	}

	return 0, false
}

func isTreeEdge(res *dijkstra.Result, parent, child int, w int64) bool {
	p, err := res.Predecessor(child)
	if err != nil || p != parent {
		return false
	}
	dp, _ := res.Distance(parent)
	dc, _ := res.Distance(child)

	return dp != dijkstra.Unreachable && dp+w == dc
}
