// SPDX-License-Identifier: MIT
// Package: lvpath/builder
//
// impl_topology.go - Path, Cycle, Star and Complete constructors.
//
// Contract:
//   - Constructors span every node 1..g.Size(); removed nodes are not expected.
//   - Edges are emitted in ascending (u, v) order.
//   - Weights come from cfg.weightFn(cfg.rng), one draw per edge in emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// File-local constants for method tagging and parameter minima.
const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes  = 2
	minCycleNodes = 3
	minStarNodes  = 2
)

// Path returns a Constructor that builds the simple path 1–2–…–n.
// Requires n ≥ 2.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Size()
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the ring 1–2–…–n–1.
// Requires n ≥ 3.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Size()
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 1; i <= n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, i%n+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor that joins node 1 to every other node.
// Requires n ≥ 2.
func Star() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Size()
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for v := 2; v <= n; v++ {
			if err := addEdge(g, cfg, methodStar, 1, v); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that adds every unordered pair {u,v}, u < v, once.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.Size()
		for u := 1; u <= n; u++ {
			for v := u + 1; v <= n; v++ {
				if err := addEdge(g, cfg, methodComplete, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
