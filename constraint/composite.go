// Package constraint: boolean composition of placement rules.
//
// A composite carries an operator tag plus an ordered child list and
// satisfies Constraint[T] itself, so composites nest arbitrarily. Nesting
// depth is bounded only by the call stack; realistic rule trees (tens of
// levels) are far below any limit, and evaluation visits each leaf at most
// once, so cost stays linear in the leaf count.

package constraint

import (
	"fmt"

	"github.com/katalvlaran/floorplan/floorgraph"
)

// operator tags the boolean combination a composite applies.
type operator uint8

const (
	opAnd operator = iota
	opOr
	opNot
)

// composite is the one implementation behind And, Or and Not.
type composite[T comparable] struct {
	op       operator
	children []Constraint[T]
}

// And combines rules that must all pass. Every child must govern the same
// target room type; a mismatch fails fast with ErrMixedTargets, a nil
// child with ErrNilConstraint. And with no children is vacuously true.
// Evaluation short-circuits on the first failing child.
func And[T comparable](children ...Constraint[T]) (Constraint[T], error) {
	for i, child := range children {
		if child == nil {
			return nil, fmt.Errorf("And: child %d: %w", i, ErrNilConstraint)
		}
		if child.TargetRoomType() != children[0].TargetRoomType() {
			return nil, fmt.Errorf("And: child %d governs %v, child 0 governs %v: %w",
				i, child.TargetRoomType(), children[0].TargetRoomType(), ErrMixedTargets)
		}
	}

	return composite[T]{op: opAnd, children: children}, nil
}

// Or combines rules of which at least one must pass. Children may govern
// different room types; the composite reports its first child's target.
// Or with no children is vacuously false ("no way to satisfy"). Nil
// children are ignored. Evaluation short-circuits on the first passing
// child.
func Or[T comparable](children ...Constraint[T]) Constraint[T] {
	kept := make([]Constraint[T], 0, len(children))
	for _, child := range children {
		if child != nil {
			kept = append(kept, child)
		}
	}

	return composite[T]{op: opOr, children: kept}
}

// Not negates exactly one rule and reports that rule's target room type.
// Not(nil) returns nil.
func Not[T comparable](child Constraint[T]) Constraint[T] {
	if child == nil {
		return nil
	}

	return composite[T]{op: opNot, children: []Constraint[T]{child}}
}

func (c composite[T]) Evaluate(roomID int, g *floorgraph.RoomGraph, asg Assignment[T]) bool {
	switch c.op {
	case opAnd:
		for _, child := range c.children {
			if !child.Evaluate(roomID, g, asg) {
				return false
			}
		}

		return true
	case opOr:
		for _, child := range c.children {
			if child.Evaluate(roomID, g, asg) {
				return true
			}
		}

		return false
	default: // opNot
		return !c.children[0].Evaluate(roomID, g, asg)
	}
}

// TargetRoomType reports the governed room type: the shared type for And,
// the first child's type for Or and Not, the zero T for empty composites.
func (c composite[T]) TargetRoomType() T {
	if len(c.children) == 0 {
		var zero T

		return zero
	}

	return c.children[0].TargetRoomType()
}
