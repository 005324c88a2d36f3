package mstengine

import (
	"errors"

	"github.com/rsmtlab/rsmt/edge"
	"github.com/rsmtlab/rsmt/marker"
	"github.com/rsmtlab/rsmt/point"
)

// ErrDisconnected is returned when the candidate edge set fails to connect
// every active point. spec.md §7 calls this structural and "never expected
// for a complete graph on ≥1 point"; the candidate set edge.Store is always
// built from is the complete graph on active points, so this should only
// ever surface if a caller bypasses smt.Instance's invariants.
var ErrDisconnected = errors.New("mstengine: candidate edges did not connect all active points")

// Mode selects how Run registers the edges it accepts.
type Mode int

const (
	// Pseudo runs union-find bookkeeping only — no edge is linked to its
	// endpoints or added to the committed list. Used for cheap trial runs.
	Pseudo Mode = iota
	// Real additionally appends each accepted edge to edges.Committed(),
	// clearing any prior committed edges first so every Real run produces a
	// fresh tree. Points carry no per-point edge list, so nothing is
	// registered on the endpoints themselves.
	Real
)

// Run performs one Kruskal pass over edges.Sorted() against activePoints,
// using registry for union-find. It returns the total length of the
// resulting spanning tree, or ErrDisconnected if activePoints could not be
// fully connected. Either way, registry is reset to the trivial partition
// before Run returns, so repeated calls never need external cleanup.
func Run(mode Mode, activePoints []*point.Point, edges *edge.Store, registry *marker.Registry) (int, error) {
	if mode == Real {
		edges.ResetCommitted()
	}

	numPoints := len(activePoints)
	if numPoints == 0 {
		return 0, nil
	}

	length := 0
	components := 1

	for _, e := range edges.Sorted() {
		if components == numPoints {
			break
		}
		if registry.SameComponent(e.P1, e.P2) {
			continue
		}

		length += e.Length
		registry.Union(e.P1, e.P2)
		if mode == Real {
			edges.Commit(e)
		}

		if size := registry.ComponentSize(e.P1); size > components {
			components = size
		}
	}

	registry.Reset(activePoints)

	if components != numPoints {
		return 0, ErrDisconnected
	}
	return length, nil
}
