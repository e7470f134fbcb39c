// SPDX-License-Identifier: MIT
//
// Package floorgen generates a connected, seed-deterministic floor topology
// and annotates it with hop distances and the critical path.
//
// What:
//
//   - Generate(roomCount, branching, rng, opts...) grows a tree of rooms:
//     room 0 is the start; every later room attaches through exactly one new
//     connection, either extending the current main chain or branching off
//     to a uniformly random earlier room, governed by branching ∈ [0,1].
//   - branching == 0 yields a pure corridor (a path graph); higher values
//     yield more side branches and therefore more dead ends.
//   - After the topology is grown, one BFS from the start room assigns
//     DistanceFromStart to every room, and the chain from the start to the
//     deepest room (ties broken by lowest room id) is flagged as the
//     critical path.
//
// Why a tree:
//
//   - roomCount rooms and roomCount-1 connections make the result connected
//     and acyclic by construction; no connectivity repair pass is needed,
//     and every room distance is well defined.
//
// Determinism:
//
//   - Identical (roomCount, branching, seed) produce a byte-identical
//     RoomGraph: attachment decisions consume the RNG in a fixed order and
//     BFS expands neighbors in ascending id order.
//   - The RNG is owned exclusively by one Generate call; concurrent calls
//     must use independent *rand.Rand instances.
//
// Errors:
//
//   - ErrTooFewRooms       roomCount < 1
//   - ErrInvalidBranching  branching outside [0,1]
//   - ErrNeedRandSource    nil rng while branching demands randomness
//   - ErrOptionViolation   invalid functional option value
package floorgen
