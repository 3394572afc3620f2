// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade of read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Directed reports whether the graph was created with WithDirected().
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Return the immutable flag.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// Size returns n, the id range fixed at creation. Removing nodes does not
// shrink it; use NodeCount for the number of live nodes.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// NodeCount returns the number of live (not removed) nodes.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.alive
}

// EdgeCount returns the number of stored adjacency entries across all lists.
// In an undirected graph every non-loop edge is counted twice (once per
// endpoint); a self-loop is counted once.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Sum list lengths over live nodes.
//
// Complexity:
//   - Time O(V), Space O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for id := 1; id <= g.n; id++ {
		total += len(g.adj[id])
	}

	return total
}
