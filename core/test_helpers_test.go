// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvpath/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep fixtures identical to the scenarios used by the dijkstra tests.

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvpath/core"
	"github.com/stretchr/testify/require"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0  = 0
	Weight1  = 1
	Weight2  = 2
	Weight4  = 4
	Weight9  = 9
	Weight10 = 10
)

// weightedEdge is one AddEdge call in a fixture.
type weightedEdge struct {
	U, V int
	W    int64
}

// fiveNodeEdges is the five-node reference graph:
//
//	(1)──10──(2)──4──(4)──1──(5)
//	  \      /        |
//	   1    2         9
//	    \  /          |
//	    (3)───────────┘
var fiveNodeEdges = []weightedEdge{
	{1, 2, Weight10},
	{1, 3, Weight1},
	{3, 2, Weight2},
	{2, 4, Weight4},
	{3, 4, Weight9},
	{4, 5, Weight1},
}

// NewFiveNode RETURNS the five-node reference graph with the given options.
func NewFiveNode(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(5, opts...)
	require.NoError(t, err)
	for _, e := range fiveNodeEdges {
		require.NoError(t, g.AddEdge(e.U, e.V, e.W), "AddEdge(%d,%d,%d)", e.U, e.V, e.W)
	}

	return g
}

// targets EXTRACTS the target ids of an adjacency list in order.
func targets(edges []core.Edge) []int {
	out := make([]int, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}

	return out
}

// RequireNoEdgeTo ASSERTS that no live node has an edge targeting id.
func RequireNoEdgeTo(t *testing.T, g *core.Graph, id int) {
	t.Helper()

	for _, m := range g.Nodes() {
		for _, e := range g.Neighbors(m) {
			require.NotEqual(t, id, e.To, "node %d still has an edge to removed node %d", m, id)
		}
	}
}
