// Package bfs walks a core.Graph by hop count, ignoring edge weights.
//
// Node ids follow core: the id space is 1..g.Size() and never shrinks.
// A removed id is still a legal start; the walk then consists of that
// node alone, which matches how dijkstra treats a removed source.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when start lies outside 1..g.Size().
	ErrStartOutOfRange = errors.New("bfs: start outside node range")

	// ErrOptionViolation wraps any option rejected while the walk is configured.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for ids the walk did not touch.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option adjusts a walk. A rejected value is remembered and reported by BFS.
type Option func(*Options)

// Options is the resolved configuration of one walk. Hooks are never nil
// once DefaultOptions has filled them.
type Options struct {
	Ctx context.Context

	// OnEnqueue sees every id when it is first discovered, with its hop count.
	OnEnqueue func(id, depth int)
	// OnDequeue sees every id just before it is appended to Order.
	OnDequeue func(id, depth int)
	// OnVisit may stop the walk by returning an error.
	OnVisit func(id, depth int) error

	// MaxDepth bounds the hop count of discovered ids; 0 means unbounded.
	MaxDepth int

	// FilterNeighbor decides whether the edge curr→neighbor may be followed.
	FilterNeighbor func(curr, neighbor int) bool

	err error
}

// DefaultOptions is an unbounded walk with no hooks and a background context.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(int, int) {},
		OnDequeue:      func(int, int) {},
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(int, int) bool { return true },
	}
}

// WithContext stops the walk once ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue installs fn as the discovery hook.
func WithOnEnqueue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue installs fn as the dequeue hook.
func WithOnDequeue(fn func(id, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit installs fn as the visit hook. Its first error ends the walk
// and comes back from BFS with the partial Result.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth keeps only ids within d hops of the start. d == 0 lifts the
// bound; d < 0 is rejected with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: max depth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result is the walk tree rooted at Start. Depth and Parent are keyed by
// node id; Start has depth 0 and no parent entry.
type Result struct {
	Start  int
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// Reached reports whether the walk touched id.
func (r *Result) Reached(id int) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo lists the ids from Start to dest along Parent links, so the path
// uses the fewest hops the walk found.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d", ErrNotReached, dest)
	}
	path := make([]int, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
