// SPDX-License-Identifier: MIT
//
// generate.go - implementation of Generate(roomCount, branching, rng).
//
// Contract:
//   - roomCount ≥ 1 (else ErrTooFewRooms).
//   - 0 ≤ branching ≤ 1 (else ErrInvalidBranching).
//   - rng may be nil only when no stochastic choice can occur
//     (roomCount == 1 or branching == 0); otherwise ErrNeedRandSource.
//   - Emits rooms in id order 0..roomCount-1 and connections in attachment
//     order, so equal inputs and seed produce a byte-identical graph.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Growth: O(n) attachments, one RNG draw per room past the root
//     (plus one draw per branching attachment).
//   - Annotation: O(n) BFS + O(depth) critical-path walk.

package floorgen

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/floorplan/floorgraph"
)

const (
	startRoomID   = 0
	branchingMin  = 0.0
	branchingMax  = 1.0
	minRoomCount  = 1
	rootRoomCount = 1
)

// Generate grows a tree-shaped floor of roomCount rooms, annotates hop
// distances from the start room and marks the critical path, then freezes
// the result into an immutable RoomGraph.
func Generate(roomCount int, branching float64, rng *rand.Rand, opts ...Option) (*floorgraph.RoomGraph, error) {
	// Validate parameters early (fail fast, zero side-effects on invalid input).
	if roomCount < minRoomCount {
		return nil, fmt.Errorf("Generate: roomCount=%d < min=%d: %w",
			roomCount, minRoomCount, ErrTooFewRooms)
	}
	if branching < branchingMin || branching > branchingMax {
		return nil, fmt.Errorf("Generate: branching=%.6f not in [%.1f,%.1f]: %w",
			branching, branchingMin, branchingMax, ErrInvalidBranching)
	}
	// RNG is only required when an attachment choice can actually be random.
	if rng == nil && branching > branchingMin && roomCount > rootRoomCount {
		return nil, fmt.Errorf("Generate: %w", ErrNeedRandSource)
	}

	// Resolve options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Grow the topology: parentOf[i] is the room that room i attached to.
	parentOf := growTree(roomCount, branching, rng, o.OnAttach)

	// Annotate and freeze.
	return assemble(roomCount, parentOf)
}

// growTree decides one attachment per room past the root.
//
// tip tracks the end of the current main chain: extension attaches the new
// room to tip and advances it; branching attaches to a uniformly random
// earlier room and leaves tip where it was, so side rooms become dead ends
// while the main chain keeps growing.
func growTree(roomCount int, branching float64, rng *rand.Rand, onAttach func(room, parent int)) []int {
	parentOf := make([]int, roomCount)
	parentOf[startRoomID] = startRoomID // root has no parent; self by convention

	tip := startRoomID
	for room := startRoomID + 1; room < roomCount; room++ {
		parent := tip
		if rng != nil && rng.Float64() < branching {
			parent = rng.Intn(room) // uniform over rooms 0..room-1
		} else {
			tip = room
		}
		parentOf[room] = parent
		onAttach(room, parent)
	}

	return parentOf
}

// assemble runs BFS over the grown tree, resolves the critical path and
// builds the final immutable graph through floorgraph.GraphBuilder.
func assemble(roomCount int, parentOf []int) (*floorgraph.RoomGraph, error) {
	distance, bfsParent := hopDistances(roomCount, parentOf)

	// Critical path: deepest room, ties broken by lowest id, then the
	// parent chain back to the start.
	deepest := startRoomID
	for id := 0; id < roomCount; id++ {
		if distance[id] > distance[deepest] {
			deepest = id
		}
	}
	critical := make([]int, 0, distance[deepest]+1)
	for cur := deepest; ; cur = bfsParent[cur] {
		critical = append(critical, cur)
		if cur == startRoomID {
			break
		}
	}

	b := floorgraph.NewGraphBuilder()
	for id := 0; id < roomCount; id++ {
		b.AddRoom()
	}
	for room := startRoomID + 1; room < roomCount; room++ {
		if err := b.Connect(parentOf[room], room); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}
	if err := b.SetStart(startRoomID); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}
	for id := 0; id < roomCount; id++ {
		if err := b.SetDistance(id, distance[id]); err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
	}
	if err := b.MarkCriticalPath(critical...); err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("Generate: %w", err)
	}

	return g, nil
}

// hopDistances runs BFS from the start room over the attachment tree and
// returns per-room hop counts and BFS parents. Neighbor expansion follows
// ascending room id order for determinism.
func hopDistances(roomCount int, parentOf []int) (distance, bfsParent []int) {
	// Adjacency from the attachment list; children were appended in id
	// order, so each list is already ascending.
	adjacency := make([][]int, roomCount)
	for room := startRoomID + 1; room < roomCount; room++ {
		p := parentOf[room]
		adjacency[p] = append(adjacency[p], room)
		adjacency[room] = append(adjacency[room], p)
	}

	distance = make([]int, roomCount)
	bfsParent = make([]int, roomCount)
	visited := make([]bool, roomCount)
	visited[startRoomID] = true
	bfsParent[startRoomID] = startRoomID

	queue := make([]int, 0, roomCount)
	queue = append(queue, startRoomID)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range adjacency[cur] {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			distance[nbr] = distance[cur] + 1
			bfsParent[nbr] = cur
			queue = append(queue, nbr)
		}
	}

	return distance, bfsParent
}
