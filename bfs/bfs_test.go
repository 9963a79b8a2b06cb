package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexboard/bfs"
	"github.com/katalvlaran/hexboard/topology"
)

func TestBFS_Errors(t *testing.T) {
	topo := topology.Standard()

	res, err := bfs.BFS(nil, 0)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	res, err = bfs.BFS(topo, -1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	res, err = bfs.BFS(topo, topology.VertexCount)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	res, err = bfs.BFS(topo, 0, bfs.WithMaxDepth(-1))
	assert.Nil(t, res)
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_ReachesWholeBoard(t *testing.T) {
	topo := topology.Standard()
	res, err := bfs.BFS(topo, 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, topology.VertexCount)
	assert.Equal(t, 0, res.Depth[0])
	for v, d := range res.Depth {
		if v == 0 {
			continue
		}
		p := res.Parent[v]
		assert.Equal(t, d-1, res.Depth[p], "parent of %d", v)
		assert.True(t, topo.Adjacent(p, v))
	}
}

func TestBFS_MaxDepth(t *testing.T) {
	topo := topology.Standard()
	res, err := bfs.BFS(topo, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 8, 2, 7, 9}, res.Order)
	assert.Equal(t, 2, res.Depth[9])

	path, err := res.PathTo(9)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 8, 9}, path)

	_, err = res.PathTo(53)
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

func TestBFS_Filter(t *testing.T) {
	topo := topology.Standard()
	allowed := map[int]bool{0: true, 1: true, 2: true}
	res, err := bfs.BFS(topo, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool {
		return allowed[nbr]
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
}

func TestBFS_OnVisitAbort(t *testing.T) {
	topo := topology.Standard()
	stop := errors.New("stop")
	visited := 0
	_, err := bfs.BFS(topo, 0, bfs.WithOnVisit(func(id, depth int) error {
		visited++
		if depth == 1 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, visited)
}

func TestBFS_Cancelled(t *testing.T) {
	topo := topology.Standard()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(topo, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
