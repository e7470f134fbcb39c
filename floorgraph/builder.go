// Package floorgraph: GraphBuilder, the single construction path.
//
// Contract (strict):
//   - Room ids are assigned sequentially from 0 by AddRoom; callers never
//     choose ids, which keeps the node table dense and lookups O(1).
//   - Connect rejects self-loops, duplicates and unknown endpoints at call
//     time, so a successfully built graph is always simple.
//   - Distance and critical-path annotations are only writable here; the
//     finished RoomGraph exposes them read-only.
//   - Build() may be called once; every later call on the builder returns
//     ErrBuilderSpent. No partial cleanup: a builder that returned an error
//     stays usable for correction, one that built successfully does not.

package floorgraph

import "fmt"

// GraphBuilder accumulates rooms, connections and generator annotations,
// then freezes them into an immutable RoomGraph.
type GraphBuilder struct {
	nodes       []RoomNode
	connections []RoomConnection
	pairs       map[[2]int]struct{}
	startID     int
	startSet    bool
	spent       bool
}

// NewGraphBuilder returns an empty builder.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{pairs: make(map[[2]int]struct{})}
}

// AddRoom appends a new room and returns its id. The room starts with
// DistanceFromStart == UnknownDistance and no critical-path flag.
// After Build() the builder is spent and AddRoom returns -1.
// Complexity: O(1) amortized.
func (b *GraphBuilder) AddRoom() int {
	if b.spent {
		return -1
	}
	id := len(b.nodes)
	b.nodes = append(b.nodes, RoomNode{ID: id, DistanceFromStart: UnknownDistance})

	return id
}

// Connect adds one undirected connection between rooms a and z.
// Returns ErrSelfConnection when a == z, ErrDanglingConnection when either
// endpoint does not exist, ErrDuplicateConnection when the pair is already
// connected, ErrBuilderSpent after Build().
// Complexity: O(1) amortized.
func (b *GraphBuilder) Connect(a, z int) error {
	if b.spent {
		return ErrBuilderSpent
	}
	if a == z {
		return fmt.Errorf("Connect(%d,%d): %w", a, z, ErrSelfConnection)
	}
	if !b.hasRoom(a) || !b.hasRoom(z) {
		return fmt.Errorf("Connect(%d,%d): %w", a, z, ErrDanglingConnection)
	}
	key := pairKey(a, z)
	if _, dup := b.pairs[key]; dup {
		return fmt.Errorf("Connect(%d,%d): %w", a, z, ErrDuplicateConnection)
	}
	b.pairs[key] = struct{}{}

	ci := len(b.connections)
	b.connections = append(b.connections, RoomConnection{A: a, B: z})
	b.nodes[a].incident = append(b.nodes[a].incident, ci)
	b.nodes[z].incident = append(b.nodes[z].incident, ci)

	return nil
}

// SetStart designates the start room.
// Returns ErrRoomNotFound for an unknown id, ErrBuilderSpent after Build().
func (b *GraphBuilder) SetStart(id int) error {
	if b.spent {
		return ErrBuilderSpent
	}
	if !b.hasRoom(id) {
		return fmt.Errorf("SetStart(%d): %w", id, ErrRoomNotFound)
	}
	b.startID = id
	b.startSet = true

	return nil
}

// SetDistance annotates a room with its hop distance from the start room.
// Returns ErrRoomNotFound for an unknown id, ErrBadDistance for d < 0,
// ErrBuilderSpent after Build().
func (b *GraphBuilder) SetDistance(id, d int) error {
	if b.spent {
		return ErrBuilderSpent
	}
	if !b.hasRoom(id) {
		return fmt.Errorf("SetDistance(%d,%d): %w", id, d, ErrRoomNotFound)
	}
	if d < 0 {
		return fmt.Errorf("SetDistance(%d,%d): %w", id, d, ErrBadDistance)
	}
	b.nodes[id].DistanceFromStart = d

	return nil
}

// MarkCriticalPath flags every listed room as part of the main route.
// Returns ErrRoomNotFound on the first unknown id (earlier ids in the same
// call stay flagged), ErrBuilderSpent after Build().
func (b *GraphBuilder) MarkCriticalPath(ids ...int) error {
	if b.spent {
		return ErrBuilderSpent
	}
	for _, id := range ids {
		if !b.hasRoom(id) {
			return fmt.Errorf("MarkCriticalPath(%d): %w", id, ErrRoomNotFound)
		}
		b.nodes[id].OnCriticalPath = true
	}

	return nil
}

// Build validates the accumulated state and freezes it into a RoomGraph.
// Returns ErrNoStartRoom when SetStart was never called or the graph is
// empty, ErrBuilderSpent on reuse. On success the builder releases its
// state and must not be used again.
// Complexity: O(1); all structural checks already ran incrementally.
func (b *GraphBuilder) Build() (*RoomGraph, error) {
	if b.spent {
		return nil, ErrBuilderSpent
	}
	if !b.startSet || !b.hasRoom(b.startID) {
		return nil, ErrNoStartRoom
	}

	g := &RoomGraph{
		nodes:       b.nodes,
		connections: b.connections,
		startID:     b.startID,
	}
	// Hand ownership to the graph; further builder use is an error.
	b.nodes = nil
	b.connections = nil
	b.pairs = nil
	b.spent = true

	return g, nil
}

// hasRoom reports whether id is a known room index.
func (b *GraphBuilder) hasRoom(id int) bool {
	return id >= 0 && id < len(b.nodes)
}

// pairKey normalizes an unordered room pair into a map key.
func pairKey(a, z int) [2]int {
	if a < z {
		return [2]int{a, z}
	}

	return [2]int{z, a}
}
