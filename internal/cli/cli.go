// Package cli implements the lvpath command-line interface.
//
// The commands load a graph file (TOML, see load.go), optionally remove
// nodes, and run one query against it:
//   - paths: shortest distances and routes from a source
//   - neighbors: adjacency lists after removals
//   - reach: hop counts from a source
//   - render: a node-link diagram with the shortest-path tree highlighted
//   - gen: emit a graph file from a generated topology
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context and tagged with a short run id.
package cli

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// version is injected at build time with -ldflags "-X ...cli.version=v1.2.3".
var version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// NewRootCommand creates the root cobra command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "lvpath",
		Short:        "lvpath computes shortest paths on weighted graphs",
		Long:         `lvpath loads a weighted graph from a TOML file and answers shortest-path, adjacency and reachability queries, optionally after removing nodes.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			logger := newLogger(cmd.ErrOrStderr(), level).With("run", runID())
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPathsCmd())
	root.AddCommand(newNeighborsCmd())
	root.AddCommand(newReachCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newGenCmd())

	return root
}

// Execute runs the lvpath CLI with ctx and returns the first command error.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// runID returns a short random id for correlating the log lines of one invocation.
func runID() string {
	return uuid.NewString()[:8]
}
