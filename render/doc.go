// Package render draws a core.Graph as a Graphviz node-link diagram, with the
// shortest-path tree of a dijkstra.Result highlighted.
//
// ToDOT produces DOT source; RenderSVG lays it out with the embedded Graphviz
// runtime from github.com/goccy/go-graphviz, so no system binary is needed.
//
//	res, _ := dijkstra.ShortestPaths(g, 1, g.Size())
//	src := render.ToDOT(g, res, render.Options{Weights: true})
//	svg, err := render.RenderSVG(ctx, src)
package render
