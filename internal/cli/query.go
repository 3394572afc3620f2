package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/core"
)

// queryFlags are the flags shared by commands that read a graph file.
type queryFlags struct {
	source int
	remove []int
}

func (q *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&q.source, "source", "s", 0, "source node (overrides the file)")
	cmd.Flags().IntSliceVar(&q.remove, "remove", nil, "extra nodes to remove before the query")
}

// query is a loaded graph with the resolved source.
type query struct {
	file   *graphFile
	graph  *core.Graph
	source int
}

// load reads path, merges the command-line overrides and builds the graph.
func (q *queryFlags) load(cmd *cobra.Command, path string) (*query, error) {
	logger := loggerFromContext(cmd.Context())

	gf, err := loadGraphFile(path)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("source") {
		gf.Source = &q.source
	}
	source, err := gf.source()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	gf.Remove = append(gf.Remove, q.remove...)

	g, err := gf.build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("loaded graph", "file", path, "nodes", g.NodeCount(), "entries", g.EdgeCount(), "removed", gf.Remove)
	return &query{file: gf, graph: g, source: source}, nil
}
