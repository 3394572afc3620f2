// File: methods_clone.go
// Role: Snapshotting graph instances.
// Determinism:
//   - Clone preserves the order of every adjacency list and the liveness of every slot.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, liveness, and every
// adjacency list. Mutating the clone never affects the source and vice versa,
// which makes Clone the way to hand a stable snapshot to long-running readers
// while the source keeps changing.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		directed: g.directed,
		n:        g.n,
		adj:      make([][]Edge, g.n+1),
		live:     make([]bool, g.n+1),
		alive:    g.alive,
	}
	copy(clone.live, g.live)

	for id := 1; id <= g.n; id++ {
		if !g.live[id] {
			continue
		}
		clone.adj[id] = make([]Edge, len(g.adj[id]))
		copy(clone.adj[id], g.adj[id])
	}

	return clone
}
