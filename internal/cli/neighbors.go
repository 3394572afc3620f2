package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newNeighborsCmd() *cobra.Command {
	var (
		q    queryFlags
		node int
	)

	cmd := &cobra.Command{
		Use:   "neighbors <graph.toml>",
		Short: "List the adjacency of every node after removals",
		Example: `  lvpath neighbors testdata/demo12.toml --remove 7
  lvpath neighbors testdata/five.toml --node 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			qr, err := q.load(cmd, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			ids := make([]int, 0, qr.graph.Size())
			if node != 0 {
				ids = append(ids, node)
			} else {
				for id := 1; id <= qr.graph.Size(); id++ {
					ids = append(ids, id)
				}
			}

			printTitle(w, "Neighbors")
			for _, id := range ids {
				label := "node " + strconv.Itoa(id)
				switch {
				case !qr.graph.HasNode(id):
					printKeyValue(w, label, dim("removed"))
				case qr.graph.Degree(id) == 0:
					printKeyValue(w, label, dim("no neighbors"))
				default:
					nbs := qr.graph.Neighbors(id)
					parts := make([]string, len(nbs))
					for i, e := range nbs {
						parts[i] = fmt.Sprintf("%d (%d)", e.To, e.Weight)
					}
					printKeyValue(w, label, strings.Join(parts, ", "))
				}
			}
			return nil
		},
	}

	q.register(cmd)
	cmd.Flags().IntVar(&node, "node", 0, "list only this node")

	return cmd
}
