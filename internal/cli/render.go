package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/render"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

func newRenderCmd() *cobra.Command {
	var (
		q       queryFlags
		format  string
		output  string
		weights bool
	)

	cmd := &cobra.Command{
		Use:   "render <graph.toml>",
		Short: "Draw the graph with its shortest-path tree highlighted",
		Example: `  lvpath render testdata/demo12.toml -o demo12.svg
  lvpath render testdata/five.toml --remove 3 --format dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatDOT, formatSVG)
			}

			qr, err := q.load(cmd, args[0])
			if err != nil {
				return err
			}
			res, err := dijkstra.ShortestPaths(qr.graph, qr.source, qr.graph.Size(), qr.file.searchOptions()...)
			if err != nil {
				return err
			}

			out := []byte(render.ToDOT(qr.graph, res, render.Options{Weights: weights}))
			if format == formatSVG {
				prog := newProgress(logger)
				if out, err = render.RenderSVG(cmd.Context(), string(out)); err != nil {
					return err
				}
				prog.done("Rendered SVG")
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			printSuccess(cmd.ErrOrStderr(), "Wrote %s", output)
			return nil
		},
	}

	q.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatSVG, "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&weights, "weights", true, "label edges with their weights")

	return cmd
}
