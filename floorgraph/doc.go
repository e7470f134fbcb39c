// Package floorgraph provides the in-memory data model for a generated
// level floor: rooms, undirected room connections, BFS hop distances and
// critical-path flags.
//
// The RoomGraph R = (N, C) is deliberately small and read-only:
//
//   - RoomNode: integer identity, distance from the start room,
//     critical-path membership, incident-connection back-references.
//   - RoomConnection: an unordered pair of room ids; immutable once added.
//   - RoomGraph: rooms in insertion order (id order), a connection table,
//     and a designated start room. All lookups by id are O(1).
//   - GraphBuilder: the only construction path. The generator, the snapshot
//     restorer and test fixtures all go through it; once Build() returns,
//     the graph never mutates again.
//
// Why a builder instead of setters?
//
//   - DistanceFromStart and OnCriticalPath are conceptually "set once by the
//     generator, immutable to everyone else". Exposing them through a spent
//     builder keeps the post-generation graph safe to share across
//     goroutines with no locks at all.
//   - Build() validates structural invariants in one place: the start room
//     must exist, connection endpoints must not dangle, and the topology is
//     simple (no self-loops, no duplicate connections).
//
// Queries:
//
//	Node(id) (RoomNode, bool)            // O(1)
//	NodeCount() / ConnectionCount()      // O(1)
//	StartID() int                        // O(1)
//	Degree(id) int                       // O(1)
//	IsDeadEnd(id) bool                   // O(1), degree == 1
//	NeighborIDs(id) []int                // O(deg log deg), ascending
//	Nodes() []RoomNode                   // O(N), id order
//	Connections() []RoomConnection       // O(C), insertion order
//	DistancesFrom(id) (map[int]int, err) // O(N+C), BFS hop counts
//
// A graph built by hand (tests, snapshot restore) may be disconnected; rooms
// the builder never annotated report DistanceFromStart == UnknownDistance.
// Downstream consumers must treat UnknownDistance as "unreachable", never as
// hop count zero.
//
// Errors:
//
//   - ErrRoomNotFound        referenced room id does not exist
//   - ErrNoStartRoom         Build() without a valid start room
//   - ErrDanglingConnection  connection endpoint references a missing room
//   - ErrSelfConnection      connection from a room to itself
//   - ErrDuplicateConnection second connection between the same two rooms
//   - ErrBuilderSpent        builder reused after Build()
package floorgraph
