// File: methods_vertices.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns ids in ascending order.
//
// Concurrency:
//   - Liveness and adjacency protected by mu.
package core

// HasNode reports whether id is in 1..n and has not been removed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.isLive(id)
}

// RemoveNode deletes a node and every edge that references it.
//
// Implementation:
//   - Stage 1: Acquire the write lock; absent or out-of-range ids are a no-op.
//   - Stage 2: Undirected: for each neighbor in id's own list, strip every edge
//     in that neighbor's list pointing to id. Directed: incoming edges are not
//     visible from id's list, so every live list is scanned instead.
//   - Stage 3: Drop id's own list and mark the slot dead.
//
// Behavior highlights:
//   - Leaves no dangling reference to id in any remaining list.
//   - Parallel edges to id are all removed; relative order of the surviving
//     entries is preserved.
//
// Complexity:
//   - Undirected: O(Σ deg(neighbor)) over the distinct neighbors of id.
//   - Directed:   O(V+E).
func (g *Graph) RemoveNode(id int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isLive(id) {
		return
	}

	if g.directed {
		for other := 1; other <= g.n; other++ {
			if other != id && g.live[other] {
				g.adj[other] = stripTarget(g.adj[other], id)
			}
		}
	} else {
		// Each distinct neighbor is cleaned once even with parallel edges.
		seen := make(map[int]struct{}, len(g.adj[id]))
		for _, e := range g.adj[id] {
			if e.To == id {
				continue
			}
			if _, done := seen[e.To]; done {
				continue
			}
			seen[e.To] = struct{}{}
			g.adj[e.To] = stripTarget(g.adj[e.To], id)
		}
	}

	g.adj[id] = nil
	g.live[id] = false
	g.alive--
}

// stripTarget filters out edges whose target is id, reusing the backing array.
func stripTarget(edges []Edge, id int) []Edge {
	kept := edges[:0]
	for _, e := range edges {
		if e.To != id {
			kept = append(kept, e)
		}
	}
	// Zero the tail so the dropped entries do not linger in the backing array.
	for i := len(kept); i < len(edges); i++ {
		edges[i] = Edge{}
	}

	return kept
}

// Nodes returns the live node ids in ascending order.
//
// Complexity:
//   - Time O(n), Space O(V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]int, 0, g.alive)
	for id := 1; id <= g.n; id++ {
		if g.live[id] {
			ids = append(ids, id)
		}
	}

	return ids
}
