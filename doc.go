// Package floorplan generates game-level floor topologies and assigns a
// semantic room type to every room under a declarative rule set.
//
// 🚀 What is floorplan?
//
//	A small, deterministic library pairing two tightly coupled subsystems:
//		• Topology: a seed-deterministic generator that grows a connected
//		  tree of rooms, annotates BFS hop distances and marks the
//		  critical path from the start room to the far leaf
//		• Semantics: a boolean constraint algebra (distance from start,
//		  distance from other room types, dead ends, critical-path
//		  membership, AND/OR/NOT composition) and a backtracking solver
//		  that maps every room to a caller-supplied room type
//
// ✨ Why choose floorplan?
//
//   - Deterministic – same seed, same floor, byte for byte
//   - Explicit failures – infeasible rule sets are reported, never patched up
//   - Generic – the room-type domain is a type parameter, not a fixed enum
//   - Pure – no I/O in the core; evaluation is safe to parallelize
//
// Everything is organized under five subpackages:
//
//	floorgraph/ — RoomNode, RoomConnection, RoomGraph and the GraphBuilder
//	floorgen/   — seed-deterministic topology generation and annotation
//	constraint/ — leaf rules and AND/OR/NOT composition over any room-type domain
//	solver/     — anchor placement plus backtracking assignment search
//	floorio/    — YAML floor snapshots: capture, restore, revalidate
//
// Quick ASCII example:
//
//	    0───1───2───4        rooms 0..4, start at 0,
//	        │                critical path 0-1-2-4,
//	        3                room 3 is a dead-end branch.
//
// Dive into examples/ for runnable demos: seeded generation, rule-driven
// room assignment, colored floor rendering, and snapshot round trips.
//
//	go get github.com/katalvlaran/floorplan
package floorplan
