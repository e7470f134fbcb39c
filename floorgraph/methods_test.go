package floorgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorplan/floorgraph"
)

func TestRoomConnection_Other(t *testing.T) {
	c := floorgraph.RoomConnection{A: 3, B: 8}

	other, ok := c.Other(3)
	assert.True(t, ok)
	assert.Equal(t, 8, other)

	other, ok = c.Other(8)
	assert.True(t, ok)
	assert.Equal(t, 3, other)

	_, ok = c.Other(5)
	assert.False(t, ok)
}

func TestRoomGraph_Queries(t *testing.T) {
	// Star: 0 connected to 1,2,3.
	b := floorgraph.NewGraphBuilder()
	for i := 0; i < 4; i++ {
		b.AddRoom()
	}
	for leaf := 1; leaf < 4; leaf++ {
		require.NoError(t, b.Connect(0, leaf))
	}
	require.NoError(t, b.SetStart(0))
	g, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, 0, g.StartID())
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 3, g.ConnectionCount())

	assert.Equal(t, 3, g.Degree(0))
	assert.False(t, g.IsDeadEnd(0))
	for leaf := 1; leaf < 4; leaf++ {
		assert.Equal(t, 1, g.Degree(leaf))
		assert.True(t, g.IsDeadEnd(leaf))
	}
	// Unknown ids degrade to zero degree, never panic.
	assert.Equal(t, 0, g.Degree(42))
	assert.False(t, g.IsDeadEnd(-1))

	nbrs, err := g.NeighborIDs(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, nbrs)

	_, err = g.NeighborIDs(99)
	assert.ErrorIs(t, err, floorgraph.ErrRoomNotFound)

	_, ok := g.Node(4)
	assert.False(t, ok)
}

func TestRoomGraph_DistancesFrom(t *testing.T) {
	g := buildChain(t, 5)

	dist, err := g.DistancesFrom(0)
	require.NoError(t, err)
	for id := 0; id < 5; id++ {
		assert.Equal(t, id, dist[id], "hop count of room %d", id)
	}

	// BFS from the middle of the chain.
	dist, err = g.DistancesFrom(2)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 2, 1: 1, 2: 0, 3: 1, 4: 2}, dist)

	_, err = g.DistancesFrom(99)
	assert.ErrorIs(t, err, floorgraph.ErrRoomNotFound)
}

func TestRoomGraph_DistancesFrom_Disconnected(t *testing.T) {
	// Two components: 0-1 and 2-3.
	b := floorgraph.NewGraphBuilder()
	for i := 0; i < 4; i++ {
		b.AddRoom()
	}
	require.NoError(t, b.Connect(0, 1))
	require.NoError(t, b.Connect(2, 3))
	require.NoError(t, b.SetStart(0))
	g, err := b.Build()
	require.NoError(t, err)

	dist, err := g.DistancesFrom(0)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 0, 1: 1}, dist)
	_, reachable := dist[3]
	assert.False(t, reachable)
}

func TestRoomGraph_NodeCopiesAreDetached(t *testing.T) {
	g := buildChain(t, 3)

	n, ok := g.Node(1)
	require.True(t, ok)
	n.DistanceFromStart = 99
	n.OnCriticalPath = true

	again, _ := g.Node(1)
	assert.Equal(t, 1, again.DistanceFromStart)
	assert.False(t, again.OnCriticalPath)
}
