package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

// errGraphFile marks a graph file that decodes but does not describe a valid graph.
var errGraphFile = errors.New("invalid graph file")

// graphFile is the on-disk description of a graph and a default query.
//
//	nodes    = 5
//	directed = false
//	source   = 1
//	remove   = [3]
//
//	[search]
//	max_distance       = 100
//	inf_edge_threshold = 1000
//
//	[[edges]]
//	from   = 1
//	to     = 2
//	weight = 10
type graphFile struct {
	Nodes    int          `toml:"nodes"`
	Directed bool         `toml:"directed,omitempty"`
	Source   *int         `toml:"source,omitempty"`
	Remove   []int        `toml:"remove,omitempty"`
	Search   *searchTable `toml:"search,omitempty"`
	Edges    []edgeEntry  `toml:"edges"`
}

type searchTable struct {
	MaxDistance      *int64 `toml:"max_distance,omitempty"`
	InfEdgeThreshold *int64 `toml:"inf_edge_threshold,omitempty"`
}

type edgeEntry struct {
	From   int   `toml:"from"`
	To     int   `toml:"to"`
	Weight int64 `toml:"weight"`
}

// loadGraphFile reads and decodes the graph file at path.
func loadGraphFile(path string) (*graphFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	gf, err := decodeGraphFile(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return gf, nil
}

// decodeGraphFile decodes a graph file and checks its header fields.
// Unknown keys are rejected so that typos do not silently change a query.
func decodeGraphFile(r io.Reader) (*graphFile, error) {
	var gf graphFile
	md, err := toml.NewDecoder(r).Decode(&gf)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", errGraphFile, undecoded[0].String())
	}
	if !md.IsDefined("nodes") {
		return nil, fmt.Errorf("%w: missing key \"nodes\"", errGraphFile)
	}
	if _, err := gf.source(); err != nil {
		return nil, fmt.Errorf("%w: %w", errGraphFile, err)
	}
	return &gf, nil
}

// source returns the query source. An absent source means node 1; a
// present one must lie in 1..nodes.
func (gf *graphFile) source() (int, error) {
	if gf.Source == nil {
		return 1, nil
	}
	if s := *gf.Source; s < 1 || s > gf.Nodes {
		return 0, fmt.Errorf("source %d (range 1..%d): %w", s, gf.Nodes, core.ErrInvalidNodeID)
	}
	return *gf.Source, nil
}

// build creates the graph, inserts every edge in file order and applies
// the removals. Errors name the offending entry.
func (gf *graphFile) build() (*core.Graph, error) {
	var opts []core.GraphOption
	if gf.Directed {
		opts = append(opts, core.WithDirected())
	}

	g, err := core.NewGraph(gf.Nodes, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errGraphFile, err)
	}
	for i, e := range gf.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edges[%d] %d→%d: %w", errGraphFile, i, e.From, e.To, err)
		}
	}
	for i, id := range gf.Remove {
		if id < 1 || id > gf.Nodes {
			return nil, fmt.Errorf("%w: remove[%d] = %d: %w", errGraphFile, i, id, core.ErrInvalidNodeID)
		}
		g.RemoveNode(id)
	}
	return g, nil
}

// searchOptions translates the [search] table into engine options.
func (gf *graphFile) searchOptions() []dijkstra.Option {
	if gf.Search == nil {
		return nil
	}
	var opts []dijkstra.Option
	if gf.Search.MaxDistance != nil {
		opts = append(opts, dijkstra.WithMaxDistance(*gf.Search.MaxDistance))
	}
	if gf.Search.InfEdgeThreshold != nil {
		opts = append(opts, dijkstra.WithInfEdgeThreshold(*gf.Search.InfEdgeThreshold))
	}
	return opts
}

// fromGraph describes g as a graph file. Removed nodes keep their ids and
// are listed under remove.
func fromGraph(g *core.Graph) *graphFile {
	gf := &graphFile{Nodes: g.Size(), Directed: g.Directed()}
	for id := 1; id <= g.Size(); id++ {
		if !g.HasNode(id) {
			gf.Remove = append(gf.Remove, id)
		}
	}
	for _, l := range g.Links() {
		gf.Edges = append(gf.Edges, edgeEntry{From: l.From, To: l.To, Weight: l.Weight})
	}
	return gf
}

// encode writes gf as TOML.
func (gf *graphFile) encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(gf)
}
