package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/core"
	"github.com/stretchr/testify/require"
)

// fiveNode builds the five-node reference graph plus an isolated node 6.
func fiveNode(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(6)
	require.NoError(t, err)
	for _, e := range [][3]int{{1, 2, 10}, {1, 3, 1}, {3, 2, 2}, {2, 4, 4}, {3, 4, 9}, {4, 5, 1}} {
		require.NoError(t, g.AddEdge(e[0], e[1], int64(e[2])))
	}

	return g
}

func TestBFS_Validation(t *testing.T) {
	g := fiveNode(t)

	_, err := bfs.BFS(nil, 1)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(g, 0)
	require.ErrorIs(t, err, bfs.ErrStartOutOfRange)

	_, err = bfs.BFS(g, 7)
	require.ErrorIs(t, err, bfs.ErrStartOutOfRange)

	_, err = bfs.BFS(g, 1, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

}

func TestBFS_RemovedStart(t *testing.T) {
	g := fiveNode(t)
	g.RemoveNode(2)

	res, err := bfs.BFS(g, 2)
	require.NoError(t, err)
	require.Equal(t, []int{2}, res.Order)
	require.Equal(t, map[int]int{2: 0}, res.Depth)
	require.Empty(t, res.Parent)
	require.False(t, res.Reached(1))

	path, err := res.PathTo(2)
	require.NoError(t, err)
	require.Equal(t, []int{2}, path)
}

func TestBFS_OrderDepthParent(t *testing.T) {
	res, err := bfs.BFS(fiveNode(t), 1)
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3, 4, 5}, res.Order)
	require.Equal(t, map[int]int{1: 0, 2: 1, 3: 1, 4: 2, 5: 3}, res.Depth)
	require.Equal(t, map[int]int{2: 1, 3: 1, 4: 2, 5: 4}, res.Parent)
	require.False(t, res.Reached(6))

	path, err := res.PathTo(5)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4, 5}, path)

	path, err = res.PathTo(1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, path)

	_, err = res.PathTo(6)
	require.ErrorIs(t, err, bfs.ErrNotReached)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	res, err := bfs.BFS(fiveNode(t), 1, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, res.Order)

	// Forbid the 1–2 edge: 2 is then reached through 3.
	res, err = bfs.BFS(fiveNode(t), 1, bfs.WithFilterNeighbor(func(curr, nbr int) bool {
		return !(curr == 1 && nbr == 2)
	}))
	require.NoError(t, err)
	require.Equal(t, 2, res.Depth[2])
	require.Equal(t, 3, res.Parent[2])
}

func TestBFS_HooksAndAbort(t *testing.T) {
	var enq, deq []int
	stop := errors.New("stop")
	res, err := bfs.BFS(fiveNode(t), 1,
		bfs.WithOnEnqueue(func(id, _ int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id, _ int) { deq = append(deq, id) }),
		bfs.WithOnVisit(func(id, _ int) error {
			if id == 3 {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	require.Equal(t, []int{1, 2, 3}, res.Order)
	require.Equal(t, []int{1, 2, 3}, deq)
	require.Equal(t, []int{1, 2, 3, 4}, enq)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := bfs.BFS(fiveNode(t), 1, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
