// Package constraint: evaluation contract, partial assignment map and
// sentinel errors.
package constraint

import (
	"errors"

	"github.com/katalvlaran/floorplan/floorgraph"
)

// Sentinel errors for constraint construction.
var (
	// ErrMixedTargets indicates And children with differing target room types.
	ErrMixedTargets = errors.New("constraint: mixed target room types in And")

	// ErrNilConstraint indicates a nil child constraint passed to And.
	ErrNilConstraint = errors.New("constraint: nil child constraint")
)

// Assignment is the partial node→room-type mapping built during solving.
// An absent key means the room is not yet decided.
type Assignment[T comparable] map[int]T

// Clone returns an independent copy of the assignment.
func (a Assignment[T]) Clone() Assignment[T] {
	out := make(Assignment[T], len(a))
	for id, rt := range a {
		out[id] = rt
	}

	return out
}

// Constraint is the single placement-rule contract. Leaves and composites
// alike evaluate a candidate room against the read-only graph and a
// consistent snapshot of the partial assignment, and name the room type
// they govern.
//
// Evaluate must be a pure function of its inputs: no mutation, no
// hidden state, so independent candidates can be checked concurrently.
type Constraint[T comparable] interface {
	// Evaluate reports whether placing the target room type on the given
	// room would satisfy this rule under the current partial assignment.
	Evaluate(roomID int, g *floorgraph.RoomGraph, asg Assignment[T]) bool

	// TargetRoomType returns the room type this rule governs.
	TargetRoomType() T
}
