// Package constraint: distance rules against other already-assigned room
// types. The comparison always uses the single nearest assigned reference
// room across all listed reference types, found by a BFS from the
// candidate that stops at the first reference layer.

package constraint

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/floorplan/floorgraph"
)

// distanceFromRoomType is shared state for the Min/Max distance-to-type
// rules: the governed type, the hop bound, and the reference type set.
type distanceFromRoomType[T comparable] struct {
	target T
	bound  int
	refs   mapset.Set[T]
}

// newDistanceFromRoomType collects the reference types into a set once at
// construction, so every Evaluate does O(1) membership checks.
func newDistanceFromRoomType[T comparable](target T, bound int, refs []T) distanceFromRoomType[T] {
	set := mapset.New[T]()
	for _, rt := range refs {
		set.Put(rt)
	}

	return distanceFromRoomType[T]{target: target, bound: bound, refs: set}
}

func (c distanceFromRoomType[T]) TargetRoomType() T { return c.target }

// nearestReference returns the hop distance from the candidate to the
// nearest assigned room whose type is in refs.
//
// The three-way outcome encodes the undecided/unreachable policy:
//   - present == false: no room of any reference type is assigned yet.
//   - present == true, reachable == false: references exist but none is
//     reachable from the candidate (infinite distance).
//   - both true: dist is the hop count to the nearest reference room.
func (c distanceFromRoomType[T]) nearestReference(roomID int, g *floorgraph.RoomGraph, asg Assignment[T]) (dist int, reachable, present bool) {
	for _, rt := range asg {
		if c.refs.Has(rt) {
			present = true
			break
		}
	}
	if !present || !g.HasRoom(roomID) {
		return 0, false, present
	}

	// Layered BFS from the candidate; the first assigned reference room
	// encountered is the nearest one.
	seen := make(map[int]bool, g.NodeCount())
	seen[roomID] = true
	type hop struct{ id, depth int }
	queue := []hop{{id: roomID, depth: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if rt, decided := asg[cur.id]; decided && c.refs.Has(rt) {
			return cur.depth, true, true
		}
		nbrs, err := g.NeighborIDs(cur.id)
		if err != nil {
			return 0, false, present
		}
		for _, nbr := range nbrs {
			if seen[nbr] {
				continue
			}
			seen[nbr] = true
			queue = append(queue, hop{id: nbr, depth: cur.depth + 1})
		}
	}

	return 0, false, present
}

// minDistanceFromRoomType passes iff the nearest assigned reference room is
// at least bound hops away (or no reference is assigned/reachable).
type minDistanceFromRoomType[T comparable] struct {
	distanceFromRoomType[T]
}

// MinDistanceFromRoomType builds a rule that admits the target room type
// only at least min hops away from the nearest assigned room of any of the
// given reference types. While no reference room is assigned the rule is
// permissive, so assignment order is never forced.
func MinDistanceFromRoomType[T comparable](target T, min int, refs ...T) Constraint[T] {
	return minDistanceFromRoomType[T]{newDistanceFromRoomType(target, min, refs)}
}

func (c minDistanceFromRoomType[T]) Evaluate(roomID int, g *floorgraph.RoomGraph, asg Assignment[T]) bool {
	dist, reachable, present := c.nearestReference(roomID, g, asg)
	if !present || !reachable {
		// Absent or unreachable references count as infinitely far.
		return true
	}

	return dist >= c.bound
}

// maxDistanceFromRoomType passes iff the nearest assigned reference room is
// at most bound hops away.
type maxDistanceFromRoomType[T comparable] struct {
	distanceFromRoomType[T]
}

// MaxDistanceFromRoomType builds a rule that admits the target room type
// only at most max hops away from the nearest assigned room of any of the
// given reference types. While no reference room is assigned (or none is
// reachable) the rule is restrictive: a maximum cannot be certified
// against an absent reference.
func MaxDistanceFromRoomType[T comparable](target T, max int, refs ...T) Constraint[T] {
	return maxDistanceFromRoomType[T]{newDistanceFromRoomType(target, max, refs)}
}

func (c maxDistanceFromRoomType[T]) Evaluate(roomID int, g *floorgraph.RoomGraph, asg Assignment[T]) bool {
	dist, reachable, present := c.nearestReference(roomID, g, asg)
	if !present || !reachable {
		return false
	}

	return dist <= c.bound
}
