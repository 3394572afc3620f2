// Package bfs provides breadth-first search over a core.Graph.
//
// BFS ignores edge weights and explores nodes in increasing hop count from a
// start node. It answers reachability questions ("which nodes can the source
// reach at all, and in how many hops") independently of weights, which makes
// it a cheap cross-check for the reachable set computed by the dijkstra
// package.
//
// Features:
//
//   - Visit order, hop depth and BFS-tree parent of every reached node.
//   - Hooks: OnEnqueue, OnDequeue, OnVisit (an OnVisit error aborts the walk).
//   - MaxDepth limiting and per-edge FilterNeighbor.
//   - Cancellation via context.Context, checked once per dequeue and per neighbor.
//
// Neighbors are expanded in adjacency-list order, so the traversal is
// deterministic for a fixed graph.
//
// Complexity:
//
//   - Time:  O(V + E)
//   - Space: O(V)
package bfs
