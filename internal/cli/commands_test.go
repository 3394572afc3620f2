package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
)

const (
	fiveFile = "../../testdata/five.toml"
	demoFile = "../../testdata/demo12.toml"
	demoCut7 = "../../testdata/demo12-cut7.toml"
)

// runCLI executes the root command with args and captures both streams.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestPathsCommand(t *testing.T) {
	out, _, err := runCLI(t, "paths", fiveFile)
	require.NoError(t, err)
	require.Contains(t, out, "5 of 5")
	require.Contains(t, out, "1 → 3 → 2 → 4 → 5")
	require.NotContains(t, out, "no path")
}

func TestPathsCommand_Remove(t *testing.T) {
	out, _, err := runCLI(t, "paths", fiveFile, "--remove", "3")
	require.NoError(t, err)
	require.Contains(t, out, "4 of 5")
	require.Contains(t, out, "1 → 2 → 4 → 5")
	require.Contains(t, out, "no path")
	require.Contains(t, out, "∞")
}

func TestPathsCommand_To(t *testing.T) {
	out, _, err := runCLI(t, "paths", demoCut7, "--to", "10")
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(strings.TrimSpace(out), "\n")+1)
	require.Contains(t, out, "20")
	require.Contains(t, out, "1 → 2 → 3 → 9 → 10")

	out, _, err = runCLI(t, "paths", demoFile, "--to", "10")
	require.NoError(t, err)
	require.Contains(t, out, "19")
	require.Contains(t, out, "1 → 2 → 7 → 3 → 9 → 10")
}

func TestPathsCommand_SearchFlags(t *testing.T) {
	out, _, err := runCLI(t, "paths", fiveFile, "--max-distance", "7")
	require.NoError(t, err)
	require.Contains(t, out, "4 of 5")

	out, _, err = runCLI(t, "paths", fiveFile, "--inf-threshold", "4")
	require.NoError(t, err)
	require.Contains(t, out, "3 of 5")

	_, _, err = runCLI(t, "paths", fiveFile, "--max-distance", "-1")
	require.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)

	_, _, err = runCLI(t, "paths", fiveFile, "--to", "9")
	require.ErrorIs(t, err, dijkstra.ErrInvalidNodeID)
}

func TestPathsCommand_SourceOutOfRange(t *testing.T) {
	for _, source := range []string{"0", "-1", "9"} {
		out, _, err := runCLI(t, "paths", fiveFile, "--source", source)
		require.ErrorIs(t, err, core.ErrInvalidNodeID, "--source %s", source)
		require.Contains(t, err.Error(), "source "+source)
		require.Empty(t, out)
	}

	out, _, err := runCLI(t, "paths", fiveFile, "--source", "5")
	require.NoError(t, err)
	require.Contains(t, out, "5 → 4 → 2 → 3 → 1")
}

func TestPathsCommand_Verbose(t *testing.T) {
	_, logs, err := runCLI(t, "-v", "paths", fiveFile)
	require.NoError(t, err)
	require.Contains(t, logs, "loaded graph")
	require.Contains(t, logs, "settled")
	require.Contains(t, logs, "Computed shortest paths")

	_, logs, err = runCLI(t, "paths", fiveFile)
	require.NoError(t, err)
	require.NotContains(t, logs, "settled")
}

func TestNeighborsCommand(t *testing.T) {
	out, _, err := runCLI(t, "neighbors", fiveFile, "--remove", "3")
	require.NoError(t, err)
	require.Contains(t, out, "2 (10)")
	require.Contains(t, out, "1 (10), 4 (4)")
	require.Contains(t, out, "removed")
	require.NotContains(t, out, "3 (")

	out, _, err = runCLI(t, "neighbors", fiveFile, "--remove", "4", "--node", "5")
	require.NoError(t, err)
	require.Contains(t, out, "no neighbors")
}

func TestReachCommand(t *testing.T) {
	out, _, err := runCLI(t, "reach", demoFile, "--max-depth", "1")
	require.NoError(t, err)
	require.Contains(t, out, "4 of 12")
	require.Contains(t, out, "1 → 7")

	out, _, err = runCLI(t, "reach", fiveFile, "--source", "5", "--remove", "4")
	require.NoError(t, err)
	require.Contains(t, out, "1 of 4")
}

func TestRemovedSource_PathsAndReachAgree(t *testing.T) {
	out, _, err := runCLI(t, "paths", fiveFile, "--source", "3", "--remove", "3")
	require.NoError(t, err)
	require.Contains(t, out, "1 of 5")

	out, _, err = runCLI(t, "reach", fiveFile, "--source", "3", "--remove", "3")
	require.NoError(t, err)
	require.Contains(t, out, "1 of 4")
	require.NotContains(t, out, "→")

	_, _, err = runCLI(t, "reach", fiveFile, "--source", "0")
	require.ErrorIs(t, err, core.ErrInvalidNodeID)
}

func TestRenderCommand_DOT(t *testing.T) {
	out, _, err := runCLI(t, "render", fiveFile, "--format", "dot")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "graph G {"))
	require.Equal(t, 4, strings.Count(out, "penwidth=2"))

	_, _, err = runCLI(t, "render", fiveFile, "--format", "png")
	require.Error(t, err)
}

func TestRenderCommand_SVGFile(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz runtime start-up is slow")
	}
	dst := filepath.Join(t.TempDir(), "five.svg")

	_, logs, err := runCLI(t, "render", fiveFile, "-o", dst)
	require.NoError(t, err)
	require.Contains(t, logs, "Wrote "+dst)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg")
}

func TestGenCommand_RoundTrip(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "cycle.toml")

	_, _, err := runCLI(t, "gen", "--topology", "cycle", "--nodes", "6",
		"--min-weight", "2", "--max-weight", "2", "-o", dst)
	require.NoError(t, err)

	gf, err := loadGraphFile(dst)
	require.NoError(t, err)
	require.Equal(t, 6, gf.Nodes)
	require.Len(t, gf.Edges, 6)

	out, _, err := runCLI(t, "paths", dst, "--to", "4")
	require.NoError(t, err)
	require.Contains(t, out, "6")
}

func TestGenCommand_Deterministic(t *testing.T) {
	args := []string{"gen", "--topology", "random", "--nodes", "20", "--p", "0.2", "--seed", "11"}
	a, _, err := runCLI(t, args...)
	require.NoError(t, err)
	b, _, err := runCLI(t, args...)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.True(t, strings.HasPrefix(a, "# lvpath gen"))

	gf, err := decodeGraphFile(strings.NewReader(a))
	require.NoError(t, err)
	_, err = gf.build()
	require.NoError(t, err)
}

func TestGenCommand_Rejects(t *testing.T) {
	cases := [][]string{
		{"gen", "--topology", "torus"},
		{"gen", "--min-weight", "5", "--max-weight", "1"},
		{"gen", "--nodes", "4", "--source", "5"},
		{"gen", "--topology", "cycle", "--nodes", "2"},
		{"gen", "--p", "1.5"},
		{"gen", "--topology", "grid", "--nodes", "10", "--width", "3"},
	}
	for _, args := range cases {
		_, _, err := runCLI(t, args...)
		require.Error(t, err, strings.Join(args, " "))
	}
}

func TestGenCommand_FullWeightRange(t *testing.T) {
	out, _, err := runCLI(t, "gen", "--topology", "complete", "--nodes", "4",
		"--min-weight", "0", "--max-weight", "9223372036854775807")
	require.NoError(t, err)

	gf, err := decodeGraphFile(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, gf.Edges, 6)
	for _, e := range gf.Edges {
		require.GreaterOrEqual(t, e.Weight, int64(0))
	}
}

func TestGenCommand_Grid(t *testing.T) {
	out, _, err := runCLI(t, "gen", "--topology", "grid", "--nodes", "16", "--width", "4", "--diagonal",
		"--min-weight", "1", "--max-weight", "1")
	require.NoError(t, err)

	gf, err := decodeGraphFile(strings.NewReader(out))
	require.NoError(t, err)
	require.Len(t, gf.Edges, 12+12+18)

	g, err := gf.build()
	require.NoError(t, err)
	res, err := dijkstra.ShortestPaths(g, 1, 16)
	require.NoError(t, err)
	d, err := res.Distance(16)
	require.NoError(t, err)
	require.Equal(t, int64(3), d)
}
