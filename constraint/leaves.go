// Package constraint: structural leaf rules over graph-derived facts
// (hop distance from start, degree, critical-path membership).
//
// Policy for malformed lookups: a rule evaluated on a room id the graph
// does not contain fails (false). Rooms with UnknownDistance count as
// infinitely far from the start, so Min rules pass and Max rules fail.

package constraint

import "github.com/katalvlaran/floorplan/floorgraph"

// minDistanceFromStart passes iff the room is at least min hops from start.
type minDistanceFromStart[T comparable] struct {
	target T
	min    int
}

// MinDistanceFromStart builds a rule that admits the target room type only
// on rooms at least min hops away from the start room.
func MinDistanceFromStart[T comparable](target T, min int) Constraint[T] {
	return minDistanceFromStart[T]{target: target, min: min}
}

func (c minDistanceFromStart[T]) Evaluate(roomID int, g *floorgraph.RoomGraph, _ Assignment[T]) bool {
	n, ok := g.Node(roomID)
	if !ok {
		return false
	}
	if n.DistanceFromStart == floorgraph.UnknownDistance {
		// Unreachable counts as infinitely far: any minimum holds.
		return true
	}

	return n.DistanceFromStart >= c.min
}

func (c minDistanceFromStart[T]) TargetRoomType() T { return c.target }

// maxDistanceFromStart passes iff the room is at most max hops from start.
type maxDistanceFromStart[T comparable] struct {
	target T
	max    int
}

// MaxDistanceFromStart builds a rule that admits the target room type only
// on rooms at most max hops away from the start room.
func MaxDistanceFromStart[T comparable](target T, max int) Constraint[T] {
	return maxDistanceFromStart[T]{target: target, max: max}
}

func (c maxDistanceFromStart[T]) Evaluate(roomID int, g *floorgraph.RoomGraph, _ Assignment[T]) bool {
	n, ok := g.Node(roomID)
	if !ok {
		return false
	}
	if n.DistanceFromStart == floorgraph.UnknownDistance {
		// A maximum cannot be certified for an unreachable room.
		return false
	}

	return n.DistanceFromStart <= c.max
}

func (c maxDistanceFromStart[T]) TargetRoomType() T { return c.target }

// mustBeDeadEnd passes iff the room has exactly one connection.
type mustBeDeadEnd[T comparable] struct {
	target T
}

// MustBeDeadEnd builds a rule that admits the target room type only on
// dead-end rooms (degree 1).
func MustBeDeadEnd[T comparable](target T) Constraint[T] {
	return mustBeDeadEnd[T]{target: target}
}

func (c mustBeDeadEnd[T]) Evaluate(roomID int, g *floorgraph.RoomGraph, _ Assignment[T]) bool {
	return g.IsDeadEnd(roomID)
}

func (c mustBeDeadEnd[T]) TargetRoomType() T { return c.target }

// criticalPathMembership passes iff OnCriticalPath matches the wanted flag.
type criticalPathMembership[T comparable] struct {
	target T
	wanted bool
}

// OnlyOnCriticalPath builds a rule that admits the target room type only on
// rooms lying on the main route.
func OnlyOnCriticalPath[T comparable](target T) Constraint[T] {
	return criticalPathMembership[T]{target: target, wanted: true}
}

// NotOnCriticalPath builds a rule that admits the target room type only on
// rooms off the main route.
func NotOnCriticalPath[T comparable](target T) Constraint[T] {
	return criticalPathMembership[T]{target: target, wanted: false}
}

func (c criticalPathMembership[T]) Evaluate(roomID int, g *floorgraph.RoomGraph, _ Assignment[T]) bool {
	n, ok := g.Node(roomID)
	if !ok {
		return false
	}

	return n.OnCriticalPath == c.wanted
}

func (c criticalPathMembership[T]) TargetRoomType() T { return c.target }
