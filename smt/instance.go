package smt

import (
	"fmt"
	"io"

	"github.com/rsmtlab/rsmt/edge"
	"github.com/rsmtlab/rsmt/hanan"
	"github.com/rsmtlab/rsmt/marker"
	"github.com/rsmtlab/rsmt/mstengine"
	"github.com/rsmtlab/rsmt/point"
	"github.com/rsmtlab/rsmt/route"
	"github.com/rsmtlab/rsmt/steiner"
)

// Instance is one SMT problem: a gridSize×gridSize grid and the pins added
// to it so far. It owns every Point, Edge and Marker it creates. An Instance
// is not re-entrant — concurrent calls from two goroutines are undefined,
// exactly as spec.md §5 specifies for the original.
type Instance struct {
	gridSize int
	pinCount int // advisory only, per spec.md §4.6; never enforced against AddPin calls.

	arena    *point.Arena
	registry *marker.Registry
	edges    *edge.Store
	active   []*point.Point // pins + committed Pseudo points, insertion order.

	finalized             bool
	length                int
	finalPoints           []*point.Point
	finalEdges            []*edge.Edge
	remainingHananForDump []hanan.Coord
}

// New constructs an empty Instance on a gridSize×gridSize grid. pinCount is
// an advisory capacity hint (matching the original's SMT(N, M) constructor);
// AddPin can be called any number of times regardless of what pinCount says.
func New(gridSize, pinCount int) *Instance {
	return &Instance{
		gridSize: gridSize,
		pinCount: pinCount,
		arena:    point.NewArena(),
		registry: marker.NewRegistry(),
		edges:    edge.NewStore(),
	}
}

// AddPin registers a pin at (x, y). It returns ErrInvalidCoord if the
// coordinate falls outside [0, gridSize), or ErrAlreadyFinalized if Build
// has already run. Duplicate pins at the same coordinate are accepted —
// spec.md §4.6 explicitly does not reject them — and produce a zero-length
// edge plus one extra active point.
func (inst *Instance) AddPin(x, y int) error {
	if inst.finalized {
		return fmt.Errorf("AddPin(%d,%d): %w", x, y, ErrAlreadyFinalized)
	}
	if x < 0 || x >= inst.gridSize || y < 0 || y >= inst.gridSize {
		return fmt.Errorf("AddPin(%d,%d): %w", x, y, ErrInvalidCoord)
	}

	p := inst.arena.Add(x, y, point.Pin)
	inst.registry.Init(p)
	for _, existing := range inst.active {
		// existing point first, new point second: SPEC_FULL.md §13.
		inst.edges.Add(existing, p, edge.Valid)
	}
	inst.active = append(inst.active, p)

	return nil
}

// Build runs the pin-only MST, the greedy Hanan/Steiner loop and
// finalization, and returns the total tree length. Build is idempotent: a
// second call returns the cached length without recomputing or mutating
// anything (spec.md §8's "Idempotence" law).
func (inst *Instance) Build() (int, error) {
	if inst.finalized {
		return inst.length, nil
	}

	length, err := mstengine.Run(mstengine.Real, inst.active, inst.edges, inst.registry)
	if err != nil {
		return 0, fmt.Errorf("Build: %w", err)
	}

	driver := &steiner.State{
		Arena:      inst.arena,
		Registry:   inst.registry,
		Edges:      inst.edges,
		Active:     inst.active,
		Candidates: inst.hananCandidates(),
		Length:     length,
	}
	if err := driver.Run(); err != nil {
		return 0, fmt.Errorf("Build: %w", err)
	}
	inst.active = driver.Active
	inst.length = driver.Length
	inst.remainingHananForDump = driver.Candidates

	inst.finalPoints, inst.finalEdges = route.Finalize(inst.active, inst.edges.Committed())
	inst.finalized = true

	return inst.length, nil
}

// Points returns the finalized point snapshot (insertion order, with via
// duplicates interleaved immediately after each pin). It is empty until
// Build has run.
func (inst *Instance) Points() []*point.Point {
	return inst.finalPoints
}

// Edges returns the finalized edge snapshot (extra/split edges first,
// followed by the surviving committed edges). It is empty until Build has
// run.
func (inst *Instance) Edges() []*edge.Edge {
	return inst.finalEdges
}

func (inst *Instance) hananCandidates() []hanan.Coord {
	coords := make([]hanan.Coord, 0, len(inst.active))
	for _, p := range inst.active {
		coords = append(coords, hanan.Coord{p.X, p.Y})
	}
	return hanan.Candidates(inst.gridSize, coords)
}

// DebugDump writes a plain-text dump of the active points, committed edges
// and (if Build has run) remaining Hanan candidates, in that order — the
// same three-list inspection surface main.cc's plain stdout dump gave the
// original, kept here explicitly outside Points/Edges' stable contract
// (SPEC_FULL.md §12).
func (inst *Instance) DebugDump(w io.Writer) {
	fmt.Fprintln(w, "points:")
	for _, p := range inst.active {
		fmt.Fprintf(w, "  (%d,%d) %s\n", p.X, p.Y, p.Type)
	}

	fmt.Fprintln(w, "edges:")
	for _, e := range inst.edges.Committed() {
		fmt.Fprintf(w, "  (%d,%d)-(%d,%d) len=%d\n", e.P1.X, e.P1.Y, e.P2.X, e.P2.Y, e.Length)
	}

	fmt.Fprintln(w, "remaining hanan candidates:")
	for _, c := range inst.remainingHananForDump {
		fmt.Fprintf(w, "  (%d,%d)\n", c[0], c[1])
	}
}
