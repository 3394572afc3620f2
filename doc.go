// Package lvpath answers single-source shortest-path questions on weighted
// graphs whose nodes are the integers 1..n, and keeps answering them while
// nodes are taken out of the network.
//
// 🚀 What is in the box?
//
//	A small, thread-safe library plus a CLI:
//		• core     – adjacency-list Graph over ids 1..n, safe node removal
//		• dijkstra – shortest distances, predecessors and path reconstruction
//		• bfs      – hop-count reachability over the same Graph
//		• builder  – deterministic topologies and seeded random graphs
//		• render   – Graphviz diagrams with the shortest-path tree highlighted
//		• cmd/lvpath – paths, neighbors, reach, render and gen over TOML graph files
//
// Quick ASCII example (the five-node reference network):
//
//	(1)──10──(2)──4──(4)──1──(5)
//	  \      /        |
//	   1    2         9
//	    \  /          |
//	    (3)───────────┘
//
// From node 1 the cheapest route to 5 is 1→3→2→4→5 at cost 8. Remove node 3
// and it becomes 1→2→4→5 at cost 15:
//
//	g, _ := core.NewGraph(5)
//	_ = g.AddEdge(1, 2, 10)
//	// ...
//	g.RemoveNode(3)
//	res, _ := dijkstra.ShortestPaths(g, 1, 5)
//	path, ok, _ := res.PathTo(5)
//
//	go get github.com/katalvlaran/lvpath
package lvpath
