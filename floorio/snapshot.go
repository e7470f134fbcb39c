// Package floorio: snapshot capture, YAML codec, restore and revalidation.
package floorio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/floorplan/constraint"
	"github.com/katalvlaran/floorplan/floorgraph"
)

// ErrSnapshotInvalid indicates a snapshot whose stored annotations
// contradict its topology, or one that cannot be decoded or rebuilt.
var ErrSnapshotInvalid = errors.New("floorio: snapshot invalid")

// SnapshotNode is one room entry: id, hop distance, critical-path flag.
type SnapshotNode struct {
	ID       int  `yaml:"id"`
	Distance int  `yaml:"distance"`
	Critical bool `yaml:"critical,omitempty"`
}

// SnapshotConnection is one undirected connection as an id pair.
type SnapshotConnection struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// Snapshot is the full persisted form of a finalized floor.
type Snapshot[T comparable] struct {
	Start       int                  `yaml:"start"`
	Nodes       []SnapshotNode       `yaml:"nodes"`
	Connections []SnapshotConnection `yaml:"connections"`
	Assignment  map[int]T            `yaml:"assignment,omitempty"`
}

// Capture copies a finalized graph and assignment into a Snapshot.
// Pass a nil assignment to persist topology only.
// Complexity: O(N + C).
func Capture[T comparable](g *floorgraph.RoomGraph, asg constraint.Assignment[T]) Snapshot[T] {
	snap := Snapshot[T]{
		Start:       g.StartID(),
		Nodes:       make([]SnapshotNode, 0, g.NodeCount()),
		Connections: make([]SnapshotConnection, 0, g.ConnectionCount()),
	}
	for _, n := range g.Nodes() {
		snap.Nodes = append(snap.Nodes, SnapshotNode{
			ID:       n.ID,
			Distance: n.DistanceFromStart,
			Critical: n.OnCriticalPath,
		})
	}
	for _, c := range g.Connections() {
		snap.Connections = append(snap.Connections, SnapshotConnection{A: c.A, B: c.B})
	}
	if asg != nil {
		snap.Assignment = make(map[int]T, len(asg))
		for id, rt := range asg {
			snap.Assignment[id] = rt
		}
	}

	return snap
}

// Encode writes the snapshot as YAML.
func Encode[T comparable](w io.Writer, snap Snapshot[T]) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("floorio: encode: %w", err)
	}

	return enc.Close()
}

// Decode reads one YAML snapshot. Malformed YAML is reported as
// ErrSnapshotInvalid with the decoder's detail attached.
func Decode[T comparable](r io.Reader) (Snapshot[T], error) {
	var snap Snapshot[T]
	if err := yaml.NewDecoder(r).Decode(&snap); err != nil {
		return Snapshot[T]{}, fmt.Errorf("%w: decode: %v", ErrSnapshotInvalid, err)
	}

	return snap, nil
}

// Restore rebuilds the immutable RoomGraph and the assignment from a
// snapshot, going through GraphBuilder so every structural invariant is
// re-checked. Node entries must be listed in id order 0..n-1; any builder
// rejection is wrapped in ErrSnapshotInvalid.
func Restore[T comparable](snap Snapshot[T]) (*floorgraph.RoomGraph, constraint.Assignment[T], error) {
	b := floorgraph.NewGraphBuilder()
	var critical []int
	for i, n := range snap.Nodes {
		if n.ID != i {
			return nil, nil, fmt.Errorf("%w: node %d listed out of id order (id %d)",
				ErrSnapshotInvalid, i, n.ID)
		}
		b.AddRoom()
		if n.Distance != floorgraph.UnknownDistance {
			if err := b.SetDistance(n.ID, n.Distance); err != nil {
				return nil, nil, fmt.Errorf("%w: %v", ErrSnapshotInvalid, err)
			}
		}
		if n.Critical {
			critical = append(critical, n.ID)
		}
	}
	for _, c := range snap.Connections {
		if err := b.Connect(c.A, c.B); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrSnapshotInvalid, err)
		}
	}
	if err := b.SetStart(snap.Start); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSnapshotInvalid, err)
	}
	if err := b.MarkCriticalPath(critical...); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSnapshotInvalid, err)
	}
	g, err := b.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSnapshotInvalid, err)
	}

	var asg constraint.Assignment[T]
	if snap.Assignment != nil {
		asg = make(constraint.Assignment[T], len(snap.Assignment))
		for id, rt := range snap.Assignment {
			if !g.HasRoom(id) {
				return nil, nil, fmt.Errorf("%w: assignment references unknown room %d",
					ErrSnapshotInvalid, id)
			}
			asg[id] = rt
		}
	}

	return g, asg, nil
}

// Revalidate restores the snapshot and checks the stored annotations
// against a fresh BFS over the restored topology: every stored distance
// must equal the recomputed hop count (UnknownDistance for unreachable
// rooms), and the critical-path flags, when present, must trace a single
// chain of consecutive depths beginning at the start room.
func Revalidate[T comparable](snap Snapshot[T]) error {
	g, _, err := Restore(snap)
	if err != nil {
		return err
	}

	dist, err := g.DistancesFrom(g.StartID())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshotInvalid, err)
	}
	criticalByDepth := make(map[int]int)
	maxCritical := -1
	for _, n := range g.Nodes() {
		want, reachable := dist[n.ID]
		if !reachable {
			want = floorgraph.UnknownDistance
		}
		if n.DistanceFromStart != want {
			return fmt.Errorf("%w: room %d stored distance %d, recomputed %d",
				ErrSnapshotInvalid, n.ID, n.DistanceFromStart, want)
		}
		if !n.OnCriticalPath {
			continue
		}
		if !reachable {
			return fmt.Errorf("%w: unreachable room %d flagged critical", ErrSnapshotInvalid, n.ID)
		}
		if prev, dup := criticalByDepth[want]; dup {
			return fmt.Errorf("%w: rooms %d and %d both critical at depth %d",
				ErrSnapshotInvalid, prev, n.ID, want)
		}
		criticalByDepth[want] = n.ID
		if want > maxCritical {
			maxCritical = want
		}
	}
	if maxCritical < 0 {
		return nil // no critical path stored; topology-only snapshots are fine
	}
	// The flags must cover depths 0..max and consecutive rooms must be adjacent.
	for depth := 0; depth <= maxCritical; depth++ {
		if _, ok := criticalByDepth[depth]; !ok {
			return fmt.Errorf("%w: critical path gap at depth %d", ErrSnapshotInvalid, depth)
		}
	}
	for depth := 0; depth < maxCritical; depth++ {
		nbrs, nErr := g.NeighborIDs(criticalByDepth[depth])
		if nErr != nil {
			return fmt.Errorf("%w: %v", ErrSnapshotInvalid, nErr)
		}
		adjacent := false
		for _, nbr := range nbrs {
			if nbr == criticalByDepth[depth+1] {
				adjacent = true
				break
			}
		}
		if !adjacent {
			return fmt.Errorf("%w: critical rooms %d and %d not connected",
				ErrSnapshotInvalid, criticalByDepth[depth], criticalByDepth[depth+1])
		}
	}

	return nil
}
