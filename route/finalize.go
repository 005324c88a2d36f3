package route

import (
	"github.com/rsmtlab/rsmt/edge"
	"github.com/rsmtlab/rsmt/point"
)

// Finalize realizes committed (the current best tree's edges, in whatever
// order mstengine.Run last left them) over activePoints (pins and Pseudo
// points, in insertion order) into a routable (points, edges) pair.
//
// activePoints' Type fields are mutated in place: a Pseudo point becomes
// M2_M3 or Invalid depending on its incident single-layer edges. The
// returned point slice is activePoints with via duplicates interleaved
// immediately after each pin, exactly as spec.md §4.5 requires; the
// returned edge slice is the split/extra edges followed by the surviving
// (single-layer) committed edges.
func Finalize(activePoints []*point.Point, committed []*edge.Edge) ([]*point.Point, []*edge.Edge) {
	extraArena := point.NewArena()
	singleLayer, extra := splitDiagonals(committed, extraArena)

	// Keyed by point identity, not Index: corners live in extraArena, whose
	// indices overlap those of activePoints.
	incidentM2 := make(map[*point.Point]bool, len(activePoints))
	incidentM3 := make(map[*point.Point]bool, len(activePoints))
	recordIncidence := func(edges []*edge.Edge) {
		for _, e := range edges {
			if e.IsM2() {
				incidentM2[e.P1] = true
				incidentM2[e.P2] = true
			}
			if e.IsM3() {
				incidentM3[e.P1] = true
				incidentM3[e.P2] = true
			}
		}
	}
	// extra (the split legs) must feed incidence too: a pin whose only
	// original connection was a diagonal edge only gains an M3 leg after
	// the split, and it's that leg, not the vanished diagonal, that must
	// qualify the pin for its M2_M3 via below.
	recordIncidence(extra)
	recordIncidence(singleLayer)

	finalPoints := make([]*point.Point, 0, len(activePoints)*2)

	for _, p := range activePoints {
		if !p.IsPin() {
			if incidentM2[p] && incidentM3[p] {
				p.Type = point.M2M3
			} else {
				p.Type = point.Invalid
			}
			finalPoints = append(finalPoints, p)
			continue
		}

		finalPoints = append(finalPoints, p)
		viaM2 := extraArena.Add(p.X, p.Y, point.PinsM2)
		finalPoints = append(finalPoints, viaM2)
		if incidentM3[p] {
			viaM2M3 := extraArena.Add(p.X, p.Y, point.M2M3)
			finalPoints = append(finalPoints, viaM2M3)
		}
	}

	finalEdges := make([]*edge.Edge, 0, len(extra)+len(singleLayer))
	finalEdges = append(finalEdges, extra...)
	finalEdges = append(finalEdges, singleLayer...)

	return finalPoints, finalEdges
}

// splitDiagonals partitions committed into the edges that are already
// single-layer (kept as-is) and the L-shaped replacements for every diagonal
// edge, each split at the corner (x of endpoint1, y of endpoint2) — spec.md
// §9's open question. Corners are allocated out of arena so callers can keep
// every point Finalize introduces, via duplicates included, in one index
// space.
//
// Point admission (smt/steiner, not this package) always builds a new
// point's candidate edges as edge.New(existingPoint, newPoint, ...) —
// existing point first, new point second — precisely so this formula
// reproduces spec.md §8 scenario 3's documented corner for pins added in
// the documented order; see SPEC_FULL.md §13.
func splitDiagonals(committed []*edge.Edge, arena *point.Arena) (singleLayer, extra []*edge.Edge) {
	singleLayer = make([]*edge.Edge, 0, len(committed))

	for _, e := range committed {
		if !e.IsDiagonal() {
			singleLayer = append(singleLayer, e)
			continue
		}

		corner := arena.Add(e.P1.X, e.P2.Y, point.M2M3)
		leg1 := edge.New(e.P1, corner, edge.Valid)
		leg2 := edge.New(e.P2, corner, edge.Valid)
		extra = append(extra, leg1, leg2)
	}

	return singleLayer, extra
}
