package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/lvpath/core"
	"github.com/stretchr/testify/require"
)

// weightedEdge is one AddEdge call in a fixture.
type weightedEdge struct {
	U, V int
	W    int64
}

// fiveNodeEdges is the five-node reference graph.
var fiveNodeEdges = []weightedEdge{
	{1, 2, 10},
	{1, 3, 1},
	{3, 2, 2},
	{2, 4, 4},
	{3, 4, 9},
	{4, 5, 1},
}

// demoEdges is the twelve-node demo network.
var demoEdges = []weightedEdge{
	{1, 2, 10}, {1, 6, 5}, {1, 7, 18}, {2, 7, 1}, {2, 3, 5}, {3, 4, 1},
	{3, 7, 3}, {4, 5, 5}, {5, 6, 9}, {5, 8, 5}, {6, 8, 6}, {6, 7, 7},
	{7, 8, 1}, {8, 9, 10}, {9, 4, 15}, {9, 3, 2}, {9, 7, 6}, {9, 10, 3},
	{10, 4, 7}, {11, 5, 2}, {11, 8, 9}, {12, 6, 4}, {12, 3, 8},
}

// buildGraph creates an n-node graph from edges.
func buildGraph(t testing.TB, n int, edges []weightedEdge, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.U, e.V, e.W))
	}

	return g
}

// bellmanFord is a brute-force oracle: repeated relaxation of every stored
// adjacency entry until nothing changes.
func bellmanFord(g *core.Graph, source int) []int64 {
	n := g.Size()
	dist := make([]int64, n+1)
	for i := range dist {
		dist[i] = -1 // unknown
	}
	dist[source] = 0
	for changed := true; changed; {
		changed = false
		for _, u := range g.Nodes() {
			if dist[u] < 0 {
				continue
			}
			for _, e := range g.Neighbors(u) {
				if cand := dist[u] + e.Weight; dist[e.To] < 0 || cand < dist[e.To] {
					dist[e.To] = cand
					changed = true
				}
			}
		}
	}

	return dist
}
