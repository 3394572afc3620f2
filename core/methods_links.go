// File: methods_links.go
// Role: Enumerating logical edges.
//
// Determinism:
//   - Links() is ordered by source id ascending, then adjacency insertion order.
//
// Concurrency:
//   - Read lock only; the result is a fresh slice.
package core

// Link is one logical edge, in the shape accepted by AddEdge.
type Link struct {
	From   int
	To     int
	Weight int64
}

// Links returns every logical edge of the graph.
//
// Behavior highlights:
//   - Directed: one Link per stored entry.
//   - Undirected: the mirrored pair of a u–v edge is reported once, as
//     From=min(u,v), To=max(u,v). Self-loops are reported once.
//   - Replaying the result through AddEdge on an empty graph of the same
//     Size reproduces the adjacency of the live nodes.
//
// Complexity:
//   - Time O(V+E), Space O(E).
func (g *Graph) Links() []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Link
	for u := 1; u <= g.n; u++ {
		for _, e := range g.adj[u] {
			if !g.directed && e.To < u {
				continue
			}
			out = append(out, Link{From: u, To: e.To, Weight: e.Weight})
		}
	}

	return out
}
