// File: methods_edges.go
// Role: Edge insertion.
// Determinism:
//   - Edges are appended in call order; adjacency lists preserve insertion order.
// Concurrency:
//   - Mutations under mu write lock.

package core

import "fmt"

// AddEdge inserts an edge between u and v with the given weight.
//
// Steps:
//  1. Validate weight (ErrInvalidWeight).
//  2. Lock mu; validate both endpoints are live ids (ErrInvalidNodeID).
//  3. Append (v, weight) to u's list.
//  4. If undirected and u != v, append (u, weight) to v's list.
//
// Self-loops are stored once. Parallel edges are retained.
//
// Complexity: O(1) amortized (slice append).
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if weight < 0 {
		return fmt.Errorf("%w: edge %d-%d weight=%d", ErrInvalidWeight, u, v, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.isLive(u) {
		return fmt.Errorf("%w: %d (range 1..%d)", ErrInvalidNodeID, u, g.n)
	}
	if !g.isLive(v) {
		return fmt.Errorf("%w: %d (range 1..%d)", ErrInvalidNodeID, v, g.n)
	}

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: weight})

	// Mirror undirected, but never twice for a loop.
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Edge{To: u, Weight: weight})
	}

	return nil
}
