package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/dijkstra"
)

func newPathsCmd() *cobra.Command {
	var (
		q            queryFlags
		to           int
		maxDistance  int64
		infThreshold int64
	)

	cmd := &cobra.Command{
		Use:   "paths <graph.toml>",
		Short: "Print shortest distances and paths from a source node",
		Long: `Run Dijkstra's algorithm from the source node and print, for every node,
its distance and the path that achieves it. Unreachable nodes report "no path".`,
		Example: `  # All nodes, source taken from the file
  lvpath paths testdata/five.toml

  # Remove node 3 first, then query a single destination
  lvpath paths testdata/five.toml --remove 3 --to 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			qr, err := q.load(cmd, args[0])
			if err != nil {
				return err
			}

			opts := qr.file.searchOptions()
			if cmd.Flags().Changed("max-distance") {
				opts = append(opts, dijkstra.WithMaxDistance(maxDistance))
			}
			if cmd.Flags().Changed("inf-threshold") {
				opts = append(opts, dijkstra.WithInfEdgeThreshold(infThreshold))
			}
			opts = append(opts, dijkstra.WithOnSettle(func(id int, d int64) {
				logger.Debug("settled", "node", id, "dist", d)
			}))

			prog := newProgress(logger)
			res, err := dijkstra.ShortestPaths(qr.graph, qr.source, qr.graph.Size(), opts...)
			if err != nil {
				return err
			}
			prog.done("Computed shortest paths", "source", qr.source)

			w := cmd.OutOrStdout()
			if to != 0 {
				return printPathRow(w, res, to)
			}

			reached := 0
			for v := 1; v <= res.NodeCount(); v++ {
				if res.Reachable(v) {
					reached++
				}
			}
			printKeyValue(w, "Source", strconv.Itoa(qr.source))
			printKeyValue(w, "Reached", fmt.Sprintf("%d of %d", reached, res.NodeCount()))
			printRow(w, "node", "distance", dim("path"))
			for v := 1; v <= res.NodeCount(); v++ {
				if err := printPathRow(w, res, v); err != nil {
					return err
				}
			}
			return nil
		},
	}

	q.register(cmd)
	cmd.Flags().IntVar(&to, "to", 0, "print only the path to this node")
	cmd.Flags().Int64Var(&maxDistance, "max-distance", 0, "do not settle nodes farther than this")
	cmd.Flags().Int64Var(&infThreshold, "inf-threshold", 0, "treat edges at or above this weight as impassable")

	return cmd
}
