package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrInvalidNodeCount indicates n < 1, a count that does not match the
	// graph's id range, or an empty predecessor table.
	ErrInvalidNodeCount = errors.New("dijkstra: invalid node count")

	// ErrInvalidNodeID indicates a source or destination outside 1..n.
	ErrInvalidNodeID = errors.New("dijkstra: invalid node id")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a
	// negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrMalformedPredecessors indicates a predecessor table that cannot have
	// been produced by ShortestPaths: an entry outside the table or a cycle.
	ErrMalformedPredecessors = errors.New("dijkstra: malformed predecessor table")
)

const (
	// Unreachable is the distance recorded for nodes with no path from the source.
	Unreachable int64 = math.MaxInt64

	// NoPredecessor is the predecessor recorded for the source and for
	// unreachable nodes.
	NoPredecessor = -1
)

// Options configures a single ShortestPaths run.
//
// MaxDistance      – nodes whose distance would exceed this stay Unreachable.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are not traversed.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
//
// OnSettle         – called once per node, in settle order, when its
//
//	distance becomes final. Default is a no-op.
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64
	OnSettle         func(id int, dist int64)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring ShortestPaths.
// An invalid Option is recorded and surfaced as an error when ShortestPaths runs.
type Option func(*Options)

// WithMaxDistance caps exploration at distance max (inclusive).
// A negative value makes ShortestPaths fail with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// A zero or negative value makes ShortestPaths fail with ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle registers a callback invoked when a node's distance is final.
// A nil fn is ignored.
func WithOnSettle(fn func(id int, dist int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// DefaultOptions returns Options with no distance cap, no impassable edges
// and a no-op settle hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
		OnSettle:         func(int, int64) {},
	}
}
