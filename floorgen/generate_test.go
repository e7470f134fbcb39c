package floorgen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/floorplan/floorgen"
	"github.com/katalvlaran/floorplan/floorgraph"
)

func TestGenerate_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := floorgen.Generate(0, 0.5, rng)
	assert.ErrorIs(t, err, floorgen.ErrTooFewRooms)

	_, err = floorgen.Generate(5, -0.1, rng)
	assert.ErrorIs(t, err, floorgen.ErrInvalidBranching)

	_, err = floorgen.Generate(5, 1.1, rng)
	assert.ErrorIs(t, err, floorgen.ErrInvalidBranching)

	// nil RNG with stochastic branching is rejected...
	_, err = floorgen.Generate(5, 0.5, nil)
	assert.ErrorIs(t, err, floorgen.ErrNeedRandSource)

	// ...but tolerated when no random choice can occur.
	_, err = floorgen.Generate(5, 0, nil)
	assert.NoError(t, err)
	_, err = floorgen.Generate(1, 0.9, nil)
	assert.NoError(t, err)

	// nil hook is an option violation.
	_, err = floorgen.Generate(5, 0, nil, floorgen.WithOnAttach(nil))
	assert.ErrorIs(t, err, floorgen.ErrOptionViolation)
}

func TestGenerate_SingleRoom(t *testing.T) {
	g, err := floorgen.Generate(1, 0.7, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	assert.Equal(t, 1, g.NodeCount())
	assert.Equal(t, 0, g.ConnectionCount())
	assert.Equal(t, 0, g.StartID())

	n, ok := g.Node(0)
	require.True(t, ok)
	assert.Equal(t, 0, n.DistanceFromStart)
	assert.True(t, n.OnCriticalPath)
}

func TestGenerate_ZeroBranchingIsChain(t *testing.T) {
	const rooms = 8
	g, err := floorgen.Generate(rooms, 0, nil)
	require.NoError(t, err)

	require.Equal(t, rooms, g.NodeCount())
	require.Equal(t, rooms-1, g.ConnectionCount())
	for id := 0; id < rooms; id++ {
		n, ok := g.Node(id)
		require.True(t, ok)
		assert.Equal(t, id, n.DistanceFromStart, "room %d hop count", id)
		// A pure corridor is its own critical path.
		assert.True(t, n.OnCriticalPath, "room %d critical flag", id)
	}
	assert.True(t, g.IsDeadEnd(rooms-1))
}

func TestGenerate_TreeProperty(t *testing.T) {
	for _, branching := range []float64{0, 0.25, 0.5, 0.75, 1} {
		for _, rooms := range []int{1, 2, 5, 17, 64} {
			g, err := floorgen.Generate(rooms, branching, rand.New(rand.NewSource(42)))
			require.NoError(t, err)

			assert.Equal(t, rooms, g.NodeCount())
			assert.Equal(t, rooms-1, g.ConnectionCount(),
				"rooms=%d branching=%.2f", rooms, branching)

			// Connected: every room has a finite BFS distance from start.
			dist, err := g.DistancesFrom(g.StartID())
			require.NoError(t, err)
			assert.Len(t, dist, rooms)
		}
	}
}

func TestGenerate_StartInvariant(t *testing.T) {
	g, err := floorgen.Generate(20, 0.6, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, 0, g.StartID())
	start, ok := g.Node(0)
	require.True(t, ok)
	assert.Equal(t, 0, start.DistanceFromStart)
	assert.True(t, start.OnCriticalPath)
}

func TestGenerate_Deterministic(t *testing.T) {
	const (
		rooms     = 40
		branching = 0.45
		seed      = 1234
	)
	first, err := floorgen.Generate(rooms, branching, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	second, err := floorgen.Generate(rooms, branching, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)

	// Structural determinism: identical nodes, annotations and connections.
	assert.Equal(t, first.Nodes(), second.Nodes())
	assert.Equal(t, first.Connections(), second.Connections())

	// A different seed should produce a different topology for a
	// branching-heavy configuration of this size.
	third, err := floorgen.Generate(rooms, branching, rand.New(rand.NewSource(seed+1)))
	require.NoError(t, err)
	assert.NotEqual(t, first.Connections(), third.Connections())
}

func TestGenerate_DistancesMatchBFS(t *testing.T) {
	g, err := floorgen.Generate(30, 0.5, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	dist, err := g.DistancesFrom(g.StartID())
	require.NoError(t, err)
	for _, n := range g.Nodes() {
		assert.Equal(t, dist[n.ID], n.DistanceFromStart, "room %d", n.ID)
	}
}

func TestGenerate_CriticalPathIsChainToDeepestRoom(t *testing.T) {
	g, err := floorgen.Generate(25, 0.5, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	var critical []floorgraph.RoomNode
	maxDist := 0
	for _, n := range g.Nodes() {
		if n.OnCriticalPath {
			critical = append(critical, n)
		}
		if n.DistanceFromStart > maxDist {
			maxDist = n.DistanceFromStart
		}
	}

	// One critical room per depth 0..maxDist, and consecutive depths are
	// adjacent: the flags trace a single chain from start to the far leaf.
	require.Len(t, critical, maxDist+1)
	byDepth := make(map[int]int, len(critical))
	for _, n := range critical {
		_, dup := byDepth[n.DistanceFromStart]
		require.False(t, dup, "two critical rooms at depth %d", n.DistanceFromStart)
		byDepth[n.DistanceFromStart] = n.ID
	}
	for depth := 0; depth < maxDist; depth++ {
		nbrs, err := g.NeighborIDs(byDepth[depth])
		require.NoError(t, err)
		assert.Contains(t, nbrs, byDepth[depth+1])
	}
}

func TestGenerate_OnAttachHook(t *testing.T) {
	const rooms = 12
	attached := make(map[int]int)
	_, err := floorgen.Generate(rooms, 0.5, rand.New(rand.NewSource(5)),
		floorgen.WithOnAttach(func(room, parent int) {
			attached[room] = parent
		}))
	require.NoError(t, err)

	require.Len(t, attached, rooms-1)
	for room, parent := range attached {
		assert.Less(t, parent, room, "parents precede children")
	}
}
