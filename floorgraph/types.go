// Package floorgraph declares RoomNode, RoomConnection, RoomGraph and the
// sentinel errors shared by the construction and query surfaces.
package floorgraph

import "errors"

// UnknownDistance marks a room whose hop distance from the start room was
// never annotated (unreachable rooms, or hand-built test graphs).
const UnknownDistance = -1

// deadEndDegree is the degree that classifies a room as a dead end.
const deadEndDegree = 1

// Sentinel errors for floorgraph construction and queries.
var (
	// ErrRoomNotFound indicates an operation referenced a non-existent room id.
	ErrRoomNotFound = errors.New("floorgraph: room not found")

	// ErrNoStartRoom indicates Build() was invoked without a valid start room.
	ErrNoStartRoom = errors.New("floorgraph: start room missing")

	// ErrDanglingConnection indicates a connection endpoint references a missing room.
	ErrDanglingConnection = errors.New("floorgraph: dangling connection endpoint")

	// ErrSelfConnection indicates a connection from a room to itself.
	ErrSelfConnection = errors.New("floorgraph: self connection not allowed")

	// ErrDuplicateConnection indicates a second connection between the same two rooms.
	ErrDuplicateConnection = errors.New("floorgraph: duplicate connection not allowed")

	// ErrBuilderSpent indicates a GraphBuilder was reused after Build().
	ErrBuilderSpent = errors.New("floorgraph: builder already spent")

	// ErrBadDistance indicates a negative hop distance was supplied to the builder.
	ErrBadDistance = errors.New("floorgraph: negative distance")
)

// RoomNode represents one room of the floor.
//
// ID uniquely identifies the room within its RoomGraph and doubles as the
// room's index in the graph's node table. DistanceFromStart and
// OnCriticalPath are set once by the generator (through GraphBuilder) and
// never change afterwards.
type RoomNode struct {
	// ID is the room's identity; small, non-negative, stable.
	ID int

	// DistanceFromStart is the BFS hop count from the start room,
	// or UnknownDistance when the room was never annotated.
	DistanceFromStart int

	// OnCriticalPath reports whether the room lies on the designated
	// main route from the start room to the far leaf.
	OnCriticalPath bool

	// incident holds indices into the graph's connection table for every
	// connection touching this room. Owned by the graph; degree queries only.
	incident []int
}

// RoomConnection is one undirected corridor between two rooms.
// The pair (A, B) is unordered; connections are immutable once added.
type RoomConnection struct {
	// A is one endpoint room id.
	A int

	// B is the other endpoint room id.
	B int
}

// Other returns the endpoint opposite to id, and whether id is an endpoint
// of this connection at all.
func (c RoomConnection) Other(id int) (int, bool) {
	switch id {
	case c.A:
		return c.B, true
	case c.B:
		return c.A, true
	default:
		return 0, false
	}
}

// RoomGraph is the finalized, read-only floor topology.
//
// Rooms are stored in id order (ids are assigned sequentially by the
// builder), so every per-room lookup is a direct slice index. The zero
// value is not usable; construct through GraphBuilder.
type RoomGraph struct {
	nodes       []RoomNode
	connections []RoomConnection
	startID     int
}
