// File: methods_adjacent.go
// Role: Adjacency queries.
//
// Determinism:
//   - Neighbors() preserves insertion order of the underlying list.
//
// Concurrency:
//   - Read lock only; results are copies.
package core

// Neighbors returns a copy of id's adjacency list.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: If id is absent (out of range or removed), return an empty slice.
//   - Stage 3: Copy the list so callers may retain it without holding the lock.
//
// Behavior highlights:
//   - Never returns nil and never fails.
//   - Parallel edges appear once per insertion; a self-loop appears once.
//
// Complexity:
//   - Time O(deg(id)), Space O(deg(id)).
func (g *Graph) Neighbors(id int) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.isLive(id) {
		return []Edge{}
	}

	out := make([]Edge, len(g.adj[id]))
	copy(out, g.adj[id])

	return out
}

// Degree returns the number of entries in id's adjacency list (0 if absent).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Degree(id int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.isLive(id) {
		return 0
	}

	return len(g.adj[id])
}
