// Package constraint implements the room-type placement rule algebra:
// leaf predicates over graph-derived facts, distance rules against other
// already-assigned room types, and boolean AND / OR / NOT composition.
//
// What:
//
//   - Constraint[T]: the single evaluation contract. Every rule, leaf or
//     composite, answers a boolean for (candidate room, graph, partial
//     assignment) and reports the room type it governs (TargetRoomType).
//     T is the caller-supplied room-type domain; any comparable type works.
//   - Assignment[T]: the partial node→type map built up during solving.
//     An absent key means "not yet decided", never "default".
//   - Leaves: MinDistanceFromStart, MaxDistanceFromStart, MustBeDeadEnd,
//     NotOnCriticalPath, OnlyOnCriticalPath, MinDistanceFromRoomType,
//     MaxDistanceFromRoomType.
//   - Composites: And (all children, shared target type enforced at
//     construction), Or (any child, mixed targets allowed), Not (negation).
//     Composites satisfy Constraint[T] themselves, so nesting is arbitrary.
//
// Undecided-reference policy (distance-to-type rules):
//
//   - No room of any reference type assigned yet: Min rules pass
//     (assignment order must not be forced), Max rules fail (a maximum
//     cannot be certified against an absent reference).
//   - Reference rooms exist but none is reachable from the candidate:
//     unreachable counts as infinite distance, so Min passes and Max fails.
//   - Multiple reference types always compare against the single nearest
//     assigned reference room across all listed types.
//
// Composition laws:
//
//   - And() with no children is vacuously true; Or() with no children is
//     vacuously false. And short-circuits on the first failing child, Or on
//     the first passing child. Not(Not(c)) evaluates identically to c.
//   - And requires every child to govern the same room type and fails fast
//     with ErrMixedTargets at construction. Or and Not never require
//     matching targets; Or reports its first child's target type.
//
// All evaluations are pure reads of the graph and the assignment snapshot,
// so independent candidates may be evaluated concurrently.
//
// Complexity: structural leaves are O(1); distance-to-type leaves are one
// bounded BFS, O(N + C); a composite costs the sum of the children it
// actually visits before short-circuiting.
//
// Errors:
//
//   - ErrMixedTargets   And children disagree on TargetRoomType
//   - ErrNilConstraint  nil child passed to And
package constraint
