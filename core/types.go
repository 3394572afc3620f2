// Package core defines the central Graph and Edge types over integer node ids,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrInvalidNodeCount - n < 1 at graph creation.
//	ErrInvalidNodeID    - node id outside 1..n or referring to a removed node.
//	ErrInvalidWeight    - negative edge weight.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNodeCount indicates a graph was requested with fewer than one node.
	ErrInvalidNodeCount = errors.New("core: node count must be at least 1")

	// ErrInvalidNodeID indicates an operation referenced an id outside 1..n
	// or a node that has been removed.
	ErrInvalidNodeID = errors.New("core: invalid node id")

	// ErrInvalidWeight indicates a negative edge weight.
	ErrInvalidWeight = errors.New("core: edge weight must be non-negative")
)

// Edge is one adjacency entry: the target node and the cost of reaching it.
type Edge struct {
	// To is the target node id.
	To int

	// Weight is the non-negative cost of the edge.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes AddEdge store only the u→v direction.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// Graph is an adjacency-list graph over nodes 1..n.
//
// adj and live are indexed by node id; index 0 is unused so that ids map
// directly onto slots. A removed node keeps its slot with live[id] == false
// and a nil adjacency list.
type Graph struct {
	mu sync.RWMutex // guards adj, live, alive

	directed bool // store one direction only
	n        int  // id range, fixed at creation

	adj   [][]Edge // node id → ordered outgoing edges
	live  []bool   // node id → present
	alive int      // number of live nodes
}

// NewGraph creates a graph with nodes 1..n, each with an empty adjacency list.
// By default the graph is undirected.
//
// Returns ErrInvalidNodeCount if n < 1.
// Complexity: O(n)
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidNodeCount, n)
	}

	g := &Graph{
		n:     n,
		adj:   make([][]Edge, n+1),
		live:  make([]bool, n+1),
		alive: n,
	}
	// Pre-populate 1..n; slot 0 stays dead.
	for id := 1; id <= n; id++ {
		g.adj[id] = make([]Edge, 0)
		g.live[id] = true
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// inRange reports whether id lies in 1..n. Caller must hold g.mu.
func (g *Graph) inRange(id int) bool {
	return id >= 1 && id <= g.n
}

// isLive reports whether id is in range and not removed. Caller must hold g.mu.
func (g *Graph) isLive(id int) bool {
	return g.inRange(id) && g.live[id]
}
