package floorgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorplan/floorgraph"
)

// buildChain builds a linear floor 0-1-2-...-(n-1) with start 0 and
// correct hop distances, through the public builder only.
func buildChain(t *testing.T, n int) *floorgraph.RoomGraph {
	t.Helper()
	b := floorgraph.NewGraphBuilder()
	for i := 0; i < n; i++ {
		require.Equal(t, i, b.AddRoom())
		require.NoError(t, b.SetDistance(i, i))
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, b.Connect(i, i+1))
	}
	require.NoError(t, b.SetStart(0))
	g, err := b.Build()
	require.NoError(t, err)

	return g
}

func TestBuilder_EmptyBuild(t *testing.T) {
	b := floorgraph.NewGraphBuilder()
	g, err := b.Build()
	assert.Nil(t, g)
	assert.ErrorIs(t, err, floorgraph.ErrNoStartRoom)
}

func TestBuilder_ConnectValidation(t *testing.T) {
	b := floorgraph.NewGraphBuilder()
	a := b.AddRoom()
	z := b.AddRoom()

	assert.ErrorIs(t, b.Connect(a, a), floorgraph.ErrSelfConnection)
	assert.ErrorIs(t, b.Connect(a, 99), floorgraph.ErrDanglingConnection)
	assert.ErrorIs(t, b.Connect(-1, z), floorgraph.ErrDanglingConnection)

	require.NoError(t, b.Connect(a, z))
	// Same pair in either orientation is a duplicate.
	assert.ErrorIs(t, b.Connect(a, z), floorgraph.ErrDuplicateConnection)
	assert.ErrorIs(t, b.Connect(z, a), floorgraph.ErrDuplicateConnection)
}

func TestBuilder_AnnotationValidation(t *testing.T) {
	b := floorgraph.NewGraphBuilder()
	id := b.AddRoom()

	assert.ErrorIs(t, b.SetStart(7), floorgraph.ErrRoomNotFound)
	assert.ErrorIs(t, b.SetDistance(7, 0), floorgraph.ErrRoomNotFound)
	assert.ErrorIs(t, b.SetDistance(id, -2), floorgraph.ErrBadDistance)
	assert.ErrorIs(t, b.MarkCriticalPath(id, 7), floorgraph.ErrRoomNotFound)
}

func TestBuilder_SpentAfterBuild(t *testing.T) {
	b := floorgraph.NewGraphBuilder()
	b.AddRoom()
	require.NoError(t, b.SetStart(0))
	_, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, -1, b.AddRoom())
	assert.ErrorIs(t, b.Connect(0, 1), floorgraph.ErrBuilderSpent)
	assert.ErrorIs(t, b.SetStart(0), floorgraph.ErrBuilderSpent)
	assert.ErrorIs(t, b.SetDistance(0, 0), floorgraph.ErrBuilderSpent)
	assert.ErrorIs(t, b.MarkCriticalPath(0), floorgraph.ErrBuilderSpent)
	_, err = b.Build()
	assert.ErrorIs(t, err, floorgraph.ErrBuilderSpent)
}

func TestBuilder_UnannotatedDistanceIsUnknown(t *testing.T) {
	b := floorgraph.NewGraphBuilder()
	b.AddRoom()
	b.AddRoom()
	require.NoError(t, b.SetStart(0))
	g, err := b.Build()
	require.NoError(t, err)

	n, ok := g.Node(1)
	require.True(t, ok)
	assert.Equal(t, floorgraph.UnknownDistance, n.DistanceFromStart)
	assert.False(t, n.OnCriticalPath)
}
