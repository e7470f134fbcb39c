// SPDX-License-Identifier: MIT
//
// solve.go - implementation of Solve: anchor placement + backtracking search.
//
// Contract:
//   - The start room always receives the spawn type; anchors resolve first.
//   - Boss candidates are ordered by descending distance from the start,
//     ties by ascending room id; rooms without a distance annotation sort
//     last. The boss choice participates in backtracking.
//   - Remaining rooms are processed in ascending id order; ruled non-anchor
//     types are tried in rule declaration order, the fallback type last.
//   - Every candidate trial consumes one step of the search budget, so the
//     solver fails fast instead of hanging on pathological rule sets.
//   - Returns only sentinel errors (wrapped with room/type context via %w);
//     never panics, never returns a partial assignment.
//
// Complexity:
//   - Well-formed configurations (fallback unruled or satisfiable) place
//     each room in O(types × rule cost) with no backtracking, i.e. near
//     linear in room count. Worst case is bounded by MaxSteps.

package solver

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/floorplan/constraint"
	"github.com/katalvlaran/floorplan/floorgraph"
)

// Solve produces a total room→type assignment for the floor, or an
// explicit failure naming the room type (and room) that could not be
// placed. rules may govern any types, including the fallback type; spawn
// and boss types are placed only as anchors.
func Solve[T comparable](g *floorgraph.RoomGraph, spawn, boss, fallback T,
	rules []constraint.Constraint[T], opts ...Option,
) (constraint.Assignment[T], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Group rules by the room type they govern, keeping declaration order
	// of first appearance for candidate ordering.
	rulesFor := make(map[T][]constraint.Constraint[T], len(rules))
	seen := mapset.New[T]()
	var ruledOrder []T
	for i, r := range rules {
		if r == nil {
			return nil, fmt.Errorf("Solve: rule %d: %w", i, ErrNilRule)
		}
		rt := r.TargetRoomType()
		rulesFor[rt] = append(rulesFor[rt], r)
		if !seen.Has(rt) {
			seen.Put(rt)
			ruledOrder = append(ruledOrder, rt)
		}
	}

	// Non-anchor candidate types: ruled, not an anchor, not the fallback
	// (which is always tried last, rules permitting).
	candidates := make([]T, 0, len(ruledOrder))
	for _, rt := range ruledOrder {
		if rt == spawn || rt == boss || rt == fallback {
			continue
		}
		candidates = append(candidates, rt)
	}

	s := &search[T]{
		g:          g,
		rulesFor:   rulesFor,
		candidates: candidates,
		fallback:   fallback,
		asg:        make(constraint.Assignment[T], g.NodeCount()),
		maxSteps:   o.MaxSteps,
		failRoom:   -1,
	}

	// Anchor 1: the start room gets the spawn type unconditionally.
	start := g.StartID()
	s.asg[start] = spawn

	// Anchor 2: boss placement, deepest eligible room first.
	bossEligible := false
	for _, room := range bossCandidates(g, start) {
		ok, err := s.trial(room, boss)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		bossEligible = true
		s.asg[room] = boss

		solved, err := s.assignRemaining(remainingRooms(g, start, room), 0)
		if err != nil {
			return nil, err
		}
		if solved {
			return s.asg, nil
		}
		delete(s.asg, room)
	}

	if !bossEligible {
		return nil, fmt.Errorf("Solve: boss type %v: no eligible room: %w", boss, ErrUnsatisfiable)
	}

	return nil, fmt.Errorf("Solve: room %d: no room type fits (tried %v): %w",
		s.failRoom, s.failTried, ErrUnsatisfiable)
}

// search carries the mutable backtracking state.
type search[T comparable] struct {
	g          *floorgraph.RoomGraph
	rulesFor   map[T][]constraint.Constraint[T]
	candidates []T
	fallback   T
	asg        constraint.Assignment[T]

	steps    int
	maxSteps int

	// failure detail: the furthest room that exhausted its candidates.
	failIdx   int
	failRoom  int
	failTried []T
}

// assignRemaining fills order[idx:] depth first, backtracking on dead ends.
func (s *search[T]) assignRemaining(order []int, idx int) (bool, error) {
	if idx == len(order) {
		return true, nil
	}
	room := order[idx]

	// Ruled non-anchor types in declaration order, fallback last.
	for _, rt := range s.candidates {
		ok, err := s.trial(room, rt)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		solved, err := s.commit(order, idx, room, rt)
		if err != nil || solved {
			return solved, err
		}
	}

	// Fallback: always admissible unless explicit rules forbid it here.
	ok, err := s.trial(room, s.fallback)
	if err != nil {
		return false, err
	}
	if ok {
		solved, err := s.commit(order, idx, room, s.fallback)
		if err != nil || solved {
			return solved, err
		}
	}

	s.recordFailure(idx, room)

	return false, nil
}

// commit tentatively assigns rt to room, recurses, and rolls back when the
// rest of the search cannot complete.
func (s *search[T]) commit(order []int, idx, room int, rt T) (bool, error) {
	s.asg[room] = rt
	solved, err := s.assignRemaining(order, idx+1)
	if err != nil || solved {
		return solved, err
	}
	delete(s.asg, room)

	return false, nil
}

// trial consumes one budget step and reports whether every rule governing
// rt admits the room under the current partial assignment. A type with no
// rules is always admissible.
func (s *search[T]) trial(room int, rt T) (bool, error) {
	s.steps++
	if s.steps > s.maxSteps {
		return false, fmt.Errorf("Solve: %d steps: %w", s.steps, ErrSearchBudget)
	}
	for _, r := range s.rulesFor[rt] {
		if !r.Evaluate(room, s.g, s.asg) {
			return false, nil
		}
	}

	return true, nil
}

// recordFailure remembers the deepest room that ran out of candidates, for
// the ErrUnsatisfiable detail message.
func (s *search[T]) recordFailure(idx, room int) {
	if s.failRoom >= 0 && idx < s.failIdx {
		return
	}
	s.failIdx = idx
	s.failRoom = room
	s.failTried = append(append([]T(nil), s.candidates...), s.fallback)
}

// bossCandidates lists every non-start room ordered by descending distance
// from the start, ties by ascending id. Rooms without a distance
// annotation (UnknownDistance) sort last.
func bossCandidates(g *floorgraph.RoomGraph, start int) []int {
	nodes := g.Nodes()
	rooms := make([]int, 0, len(nodes))
	for _, n := range nodes {
		if n.ID != start {
			rooms = append(rooms, n.ID)
		}
	}
	sort.SliceStable(rooms, func(i, j int) bool {
		di, dj := nodes[rooms[i]].DistanceFromStart, nodes[rooms[j]].DistanceFromStart
		if di != dj {
			return di > dj
		}

		return rooms[i] < rooms[j]
	})

	return rooms
}

// remainingRooms lists every room except the anchors, ascending id.
func remainingRooms(g *floorgraph.RoomGraph, start, boss int) []int {
	rooms := make([]int, 0, g.NodeCount())
	for id := 0; id < g.NodeCount(); id++ {
		if id == start || id == boss {
			continue
		}
		rooms = append(rooms, id)
	}

	return rooms
}
