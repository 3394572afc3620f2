// Package dijkstra computes single-source shortest paths over a core.Graph
// with non-negative integer weights, and reconstructs the path to each node.
//
// Overview:
//
//   - ShortestPaths runs Dijkstra's algorithm from one source and returns a
//     Result holding, for every id 1..n, the shortest distance (or Unreachable)
//     and the predecessor on one shortest path (or NoPredecessor).
//   - ReconstructPath walks a predecessor table backward from a destination
//     and returns the ordered node sequence source…destination, or reports
//     that no path exists. "No path" is a normal result, not an error.
//
// Frontier:
//
//   - A container/heap min-heap of (node, tentative distance) entries.
//   - Lazy deletion: an improved distance pushes a new entry; the outdated one
//     stays in the heap and is skipped when popped because its distance exceeds
//     the best known distance for that node.
//   - Entries with equal distance are processed in insertion order. Distances
//     are unique regardless; predecessors among equal-length paths follow from
//     this order.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); O(V) for the tables and O(E) worst-case heap entries.
//
// Options:
//
//   - WithMaxDistance(d):      nodes farther than d stay Unreachable.
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable.
//   - WithOnSettle(fn):        called once per node when its distance is final.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:              nil *core.Graph.
//   - ErrInvalidNodeCount:      n < 1, or n does not match the graph's id range.
//   - ErrInvalidNodeID:         source or destination outside 1..n.
//   - ErrBadMaxDistance:        negative MaxDistance option.
//   - ErrBadInfThreshold:       non-positive InfEdgeThreshold option.
//   - ErrMalformedPredecessors: a predecessor table that loops or points outside its range.
//
// Concurrency:
//
//   - Each call owns its tables and heap; concurrent calls over the same graph
//     are safe as long as the graph is not mutated meanwhile. To keep computing
//     while another goroutine mutates the graph, run over g.Clone().
//   - The engine never caches: a mutation followed by a new call always
//     recomputes from scratch.
//
// Example:
//
//	g, _ := core.NewGraph(5)
//	_ = g.AddEdge(1, 3, 1)
//	_ = g.AddEdge(3, 2, 2)
//	res, err := dijkstra.ShortestPaths(g, 1, 5)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, ok, _ := res.PathTo(2) // [1 3 2], true
package dijkstra
