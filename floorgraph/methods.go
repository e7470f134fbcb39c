// Package floorgraph: read-only RoomGraph query implementations.
//
// Every query either runs in O(1) via direct slice indexing or documents its
// cost. NeighborIDs returns ids sorted ascending so that BFS traversals over
// the same graph are reproducible call after call.

package floorgraph

import "sort"

// StartID returns the id of the designated start room.
// Complexity: O(1).
func (g *RoomGraph) StartID() int { return g.startID }

// NodeCount returns the number of rooms in the graph.
// Complexity: O(1).
func (g *RoomGraph) NodeCount() int { return len(g.nodes) }

// ConnectionCount returns the number of room connections.
// Complexity: O(1).
func (g *RoomGraph) ConnectionCount() int { return len(g.connections) }

// HasRoom reports whether a room with the given id exists.
// Complexity: O(1).
func (g *RoomGraph) HasRoom(id int) bool {
	return id >= 0 && id < len(g.nodes)
}

// Node returns a copy of the room with the given id and whether it exists.
// Returning a value keeps the graph's own table immutable to callers.
// Complexity: O(1) plus the incident-slice copy cost, i.e. O(deg).
func (g *RoomGraph) Node(id int) (RoomNode, bool) {
	if !g.HasRoom(id) {
		return RoomNode{}, false
	}
	n := g.nodes[id]
	// Detach the incident backing array from the graph's copy.
	n.incident = append([]int(nil), n.incident...)

	return n, true
}

// Degree returns the number of connections incident to the room,
// or 0 for an unknown id.
// Complexity: O(1).
func (g *RoomGraph) Degree(id int) int {
	if !g.HasRoom(id) {
		return 0
	}

	return len(g.nodes[id].incident)
}

// IsDeadEnd reports whether the room has exactly one incident connection.
// Complexity: O(1).
func (g *RoomGraph) IsDeadEnd(id int) bool {
	return g.Degree(id) == deadEndDegree
}

// NeighborIDs returns the ids of rooms directly connected to id, sorted
// ascending for deterministic traversal order.
// Returns ErrRoomNotFound for an unknown id.
// Complexity: O(deg log deg).
func (g *RoomGraph) NeighborIDs(id int) ([]int, error) {
	if !g.HasRoom(id) {
		return nil, ErrRoomNotFound
	}
	incident := g.nodes[id].incident
	neighbors := make([]int, 0, len(incident))
	for _, ci := range incident {
		other, ok := g.connections[ci].Other(id)
		if !ok {
			// Connection table and incident indices are built together;
			// a mismatch here is unreachable by construction.
			continue
		}
		neighbors = append(neighbors, other)
	}
	sort.Ints(neighbors)

	return neighbors, nil
}

// Nodes returns a copy of every room in id order.
// Complexity: O(N).
func (g *RoomGraph) Nodes() []RoomNode {
	out := make([]RoomNode, len(g.nodes))
	for i, n := range g.nodes {
		n.incident = append([]int(nil), n.incident...)
		out[i] = n
	}

	return out
}

// Connections returns a copy of the connection table in insertion order.
// Complexity: O(C).
func (g *RoomGraph) Connections() []RoomConnection {
	return append([]RoomConnection(nil), g.connections...)
}

// DistancesFrom runs a breadth-first search from the given room and returns
// hop counts for every reachable room, keyed by room id. Rooms absent from
// the map are unreachable from the origin. Neighbor expansion follows
// NeighborIDs order, so the result is deterministic.
// Returns ErrRoomNotFound for an unknown origin.
// Complexity: O(N + C).
func (g *RoomGraph) DistancesFrom(id int) (map[int]int, error) {
	if !g.HasRoom(id) {
		return nil, ErrRoomNotFound
	}

	dist := make(map[int]int, len(g.nodes))
	dist[id] = 0
	queue := make([]int, 0, len(g.nodes))
	queue = append(queue, id)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		neighbors, err := g.NeighborIDs(cur)
		if err != nil {
			return nil, err
		}
		for _, nbr := range neighbors {
			if _, seen := dist[nbr]; seen {
				continue
			}
			dist[nbr] = dist[cur] + 1
			queue = append(queue, nbr)
		}
	}

	return dist, nil
}
