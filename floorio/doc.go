// Package floorio persists a finalized floor as a YAML snapshot and
// reconstructs it for replay and debugging.
//
// The snapshot carries exactly what downstream validation needs and
// nothing more: per-room id, hop distance and critical-path flag, the
// connections as id pairs, the start room id, and (optionally) the final
// room-type assignment. Re-running generation is never required.
//
//	start: 0
//	nodes:
//	  - id: 0
//	    distance: 0
//	    critical: true
//	  - id: 1
//	    distance: 1
//	connections:
//	  - a: 0
//	    b: 1
//	assignment:
//	  0: spawn
//	  1: boss
//
// Restore rebuilds the RoomGraph through floorgraph.GraphBuilder, so a
// malformed snapshot surfaces the same structural sentinels the builder
// enforces (dangling endpoints, duplicate connections, missing start).
// Revalidate additionally recomputes BFS distances over the restored
// topology and checks them against the stored annotations.
//
// Errors:
//
//   - ErrSnapshotInvalid  stored annotations contradict the topology
//     (also wraps decode failures and builder sentinels)
package floorio
