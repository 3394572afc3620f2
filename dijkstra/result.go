package dijkstra

import "fmt"

// Result is the outcome of one ShortestPaths run. It is immutable: accessors
// return values or copies, never the internal tables.
type Result struct {
	source int
	dist   []int64 // index 0 unused
	prev   []int   // index 0 unused
}

// Source returns the node the run started from.
func (r *Result) Source() int { return r.source }

// NodeCount returns n, the id range the result covers.
func (r *Result) NodeCount() int { return len(r.dist) - 1 }

// Distance returns the shortest distance from the source to v, or Unreachable.
func (r *Result) Distance(v int) (int64, error) {
	if err := r.check(v); err != nil {
		return 0, err
	}

	return r.dist[v], nil
}

// Predecessor returns the node preceding v on its shortest path, or
// NoPredecessor for the source and unreachable nodes.
func (r *Result) Predecessor(v int) (int, error) {
	if err := r.check(v); err != nil {
		return 0, err
	}

	return r.prev[v], nil
}

// Reachable reports whether v is in range and has a path from the source.
func (r *Result) Reachable(v int) bool {
	return r.check(v) == nil && r.dist[v] != Unreachable
}

// Distances returns a copy of the distance table indexed by node id.
// Index 0 is unused and holds Unreachable.
func (r *Result) Distances() []int64 {
	out := make([]int64, len(r.dist))
	copy(out, r.dist)

	return out
}

// Predecessors returns a copy of the predecessor table indexed by node id,
// suitable for ReconstructPath. Index 0 is unused and holds NoPredecessor.
func (r *Result) Predecessors() []int {
	out := make([]int, len(r.prev))
	copy(out, r.prev)

	return out
}

// PathTo reconstructs the path from the source to dest.
// See ReconstructPath for the meaning of the return values.
func (r *Result) PathTo(dest int) ([]int, bool, error) {
	return ReconstructPath(r.prev, r.source, dest)
}

func (r *Result) check(v int) error {
	if v < 1 || v >= len(r.dist) {
		return fmt.Errorf("%w: %d (range 1..%d)", ErrInvalidNodeID, v, len(r.dist)-1)
	}

	return nil
}
