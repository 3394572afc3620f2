// Package core provides a small, thread-safe in-memory Graph over
// integer-labeled nodes with weighted edges.
//
// The Graph G = (V,E) is fixed in size at creation: NewGraph(n) pre-populates
// nodes 1..n, each with an empty adjacency list. Nodes can later be removed
// but never re-added; the id range 1..n (Size) stays stable for the lifetime
// of the graph so that per-run tables in the dijkstra package can be indexed
// by id directly.
//
// Behaviors:
//
//   - Undirected by default: AddEdge(u,v,w) stores (v,w) in u's list and
//     (u,w) in v's list. WithDirected() stores only u→v.
//   - Self-loops are stored once: AddEdge(v,v,w) appends a single (v,w).
//   - Parallel edges are kept; there is no de-duplication.
//   - Weights are non-negative integers; AddEdge rejects w < 0.
//   - RemoveNode strips every edge that targets the removed node from every
//     remaining list, so no dangling references survive.
//
// Core Methods:
//
//	// Construction
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(n)
//
//	// Mutation
//	AddEdge(u, v int, weight int64) error // O(1) amortized
//	RemoveNode(id int)                    // O(deg(id)·d) undirected, O(V+E) directed
//
//	// Query
//	Neighbors(id int) []Edge // O(deg(id)), copy, never nil
//	HasNode(id int) bool     // O(1)
//	Nodes() []int            // O(n), ascending
//	Size() int               // O(1), the id range n
//	NodeCount() int          // O(1), live nodes
//	EdgeCount() int          // O(V), stored adjacency entries
//
//	// Snapshots
//	Clone() *Graph // O(V+E) deep copy
//
// Errors:
//
//	ErrInvalidNodeCount – n < 1 at creation
//	ErrInvalidNodeID    – id outside 1..n, or a removed node, in AddEdge
//	ErrInvalidWeight    – negative weight in AddEdge
//
// Concurrency:
//
//	A single sync.RWMutex guards adjacency and liveness. Readers receive
//	copies, so returned slices may be retained and modified freely.
package core
