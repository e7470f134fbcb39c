// SPDX-License-Identifier: MIT
//
// Package solver assigns a room type to every room of a floor, honoring a
// set of (possibly composite) placement rules, or fails explicitly.
//
// What:
//
//   - Solve(g, spawn, boss, fallback, rules, opts...) produces a total
//     node→type assignment: structural anchors first, then a backtracking
//     search over the remaining rooms.
//   - The start room receives the spawn type unconditionally.
//   - The boss room is searched among eligible rooms satisfying every boss
//     rule, preferring maximum distance from the start (ties broken by
//     lowest room id); if a boss placement starves the rest of the search,
//     the next-best candidate is tried.
//   - Every remaining room, in ascending id order, tries each ruled
//     non-anchor type in rule declaration order and commits the first one
//     whose rules all pass, falling back to the fallback type otherwise.
//     Fallback placement itself honors any rules that govern the fallback
//     type: if they fail too, the solver backtracks the most recent
//     decision instead of committing an invalid room.
//
// Because distance-to-type rules read the partial assignment, earlier
// decisions can starve later rooms; the backtracking search revisits prior
// choices in that case. The search is bounded by WithMaxSteps (default
// 100000 candidate trials) and fails fast with ErrSearchBudget rather than
// hanging on pathological rule sets.
//
// Failure is explicit: ErrUnsatisfiable wraps the room id and room types
// that could not be placed, so callers can retry with a different seed or
// relax the offending rule. A partially valid assignment is never returned.
//
// Errors:
//
//   - ErrNilGraph       nil RoomGraph
//   - ErrNilRule        nil entry in the rule list
//   - ErrUnsatisfiable  no total assignment exists under the rules
//   - ErrSearchBudget   backtracking exceeded the step budget
//   - ErrOptionViolation invalid functional option value
package solver
