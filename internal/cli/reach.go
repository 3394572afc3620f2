package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/bfs"
)

func newReachCmd() *cobra.Command {
	var (
		q        queryFlags
		maxDepth int
	)

	cmd := &cobra.Command{
		Use:   "reach <graph.toml>",
		Short: "Print hop counts from a source node, ignoring weights",
		Long: `Print the fewest-hops route from the source to every node it reaches.

A removed source is accepted, as with paths: the walk then reaches only the
source itself.`,
		Example: `  lvpath reach testdata/demo12.toml --max-depth 2`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			qr, err := q.load(cmd, args[0])
			if err != nil {
				return err
			}

			opts := []bfs.Option{bfs.WithContext(cmd.Context())}
			if maxDepth > 0 {
				opts = append(opts, bfs.WithMaxDepth(maxDepth))
			}

			prog := newProgress(logger)
			res, err := bfs.BFS(qr.graph, qr.source, opts...)
			if err != nil {
				return err
			}
			prog.done("Walked reachable nodes", "source", qr.source)

			w := cmd.OutOrStdout()
			printKeyValue(w, "Source", strconv.Itoa(qr.source))
			printKeyValue(w, "Reached", fmt.Sprintf("%d of %d", len(res.Order), qr.graph.NodeCount()))
			printRow(w, "node", "hops", dim("path"))
			for _, id := range res.Order {
				path, err := res.PathTo(id)
				if err != nil {
					return err
				}
				printRow(w, strconv.Itoa(id), strconv.Itoa(res.Depth[id]), formatPath(path))
			}
			return nil
		},
	}

	q.register(cmd)
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "stop after this many hops (0 means no limit)")

	return cmd
}
