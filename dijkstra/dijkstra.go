package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// ShortestPaths computes shortest distances and predecessors from source to
// every node id 1..n of g.
//
// Returns:
//
//   - *Result: distances (Unreachable if no path) and predecessors
//     (NoPredecessor for the source and for unreachable nodes).
//   - err: a sentinel error if inputs are invalid.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. g must be non-nil (ErrNilGraph).
//  3. n must be ≥ 1 and equal to g.Size() (ErrInvalidNodeCount).
//  4. source must lie in 1..n (ErrInvalidNodeID).
//
// A source inside 1..n that was removed from g is accepted: it has distance 0
// and every other node is unreachable.
//
// Edge weights are assumed non-negative; core.Graph rejects negative weights
// on insertion, so no scan is performed here.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(g *core.Graph, source, n int, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate the requested table size against the graph
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidNodeCount, n)
	}
	if size := g.Size(); n != size {
		return nil, fmt.Errorf("%w: n=%d, graph has %d", ErrInvalidNodeCount, n, size)
	}

	// 4) Validate source lies in the id range
	if source < 1 || source > n {
		return nil, fmt.Errorf("%w: source %d (range 1..%d)", ErrInvalidNodeID, source, n)
	}

	r := newRunner(g, source, n, cfg)
	r.process()

	return &Result{source: source, dist: r.dist, prev: r.prev}, nil
}

// runner holds the mutable state for a single execution.
type runner struct {
	g       *core.Graph // read-only within a run
	options Options
	dist    []int64 // node id → best known distance
	prev    []int   // node id → predecessor on the best known path
	pq      nodePQ  // lazy-deletion frontier
	seq     uint64  // insertion counter for FIFO tie-breaking
}

// newRunner allocates the per-run tables and seeds the frontier with (source, 0).
func newRunner(g *core.Graph, source, n int, cfg Options) *runner {
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n+1),
		prev:    make([]int, n+1),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = Unreachable
		r.prev[i] = NoPredecessor
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	r.push(source, 0)

	return r
}

// push inserts a frontier entry stamped with the next insertion sequence.
func (r *runner) push(id int, dist int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// process is the core loop. It repeatedly extracts the entry with the smallest
// distance and relaxes the edges of its node.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable nodes processed).
//   - The minimum distance in the heap exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale entry: a shorter distance was found after this one was pushed.
		if item.dist > r.dist[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}

		r.options.OnSettle(item.id, item.dist)
		r.relax(item.id)
	}
}

// relax tries to improve the distance of every neighbor of u.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, e := range r.g.Neighbors(u) {
		w := e.Weight
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		// Saturate instead of overflowing past Unreachable.
		if w > Unreachable-1-du {
			continue
		}

		cand := du + w
		if cand > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal paths keep the first predecessor found.
		if cand >= r.dist[e.To] {
			continue
		}

		r.dist[e.To] = cand
		r.prev[e.To] = u
		r.push(e.To, cand)
	}
}

// nodeItem is a frontier entry.
type nodeItem struct {
	id   int    // node id
	dist int64  // tentative distance at push time
	seq  uint64 // insertion order
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by insertion order.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance; ties go to the entry inserted first.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
