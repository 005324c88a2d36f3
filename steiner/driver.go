package steiner

import (
	"math"

	"github.com/rsmtlab/rsmt/edge"
	"github.com/rsmtlab/rsmt/hanan"
	"github.com/rsmtlab/rsmt/marker"
	"github.com/rsmtlab/rsmt/mstengine"
	"github.com/rsmtlab/rsmt/point"
)

// State is the greedy driver's mutable working set: the shared arena,
// marker registry and edge store, the active-point list (pins plus every
// committed Pseudo point so far, in insertion order), the remaining Hanan
// candidates, and the tree length the last MST run produced.
//
// A caller (smt.Instance) owns the State and drives it with Run after
// seeding Active with the pins and Length with the pin-only MST length via
// mstengine.Run(Real, ...).
type State struct {
	Arena      *point.Arena
	Registry   *marker.Registry
	Edges      *edge.Store
	Active     []*point.Point
	Candidates []hanan.Coord
	Length     int
}

// Run repeats Iterate until it reports no further improvement (fixpoint) or
// an error. It returns the fixpoint error, if any; mstengine.ErrDisconnected
// should never surface here since the candidate edge set is always the
// complete graph on active points.
func (s *State) Run() error {
	for {
		progressed, err := s.Iterate()
		if err != nil {
			return err
		}
		if !progressed {
			return nil
		}
	}
}

// Iterate performs one pass of spec.md §4.4 steps 1-4: trial every remaining
// Hanan candidate, commit the strict-best improver if one exists, and report
// whether it committed anything.
func (s *State) Iterate() (bool, error) {
	bestIndex := -1
	bestLength := math.MaxInt

	for i, h := range s.Candidates {
		length, err := s.trial(h)
		if err != nil {
			return false, err
		}
		if length < s.Length && length < bestLength {
			bestLength = length
			bestIndex = i
		}
	}

	if bestIndex < 0 {
		return false, nil
	}

	winner := s.Candidates[bestIndex]
	s.Candidates = append(s.Candidates[:bestIndex], s.Candidates[bestIndex+1:]...)

	p := s.Arena.Add(winner[0], winner[1], point.Pseudo)
	s.Registry.Init(p)
	for _, existing := range s.Active {
		// existing point first, new point second: see SPEC_FULL.md §13.
		s.Edges.Add(existing, p, edge.Valid)
	}
	s.Active = append(s.Active, p)

	length, err := mstengine.Run(mstengine.Real, s.Active, s.Edges, s.Registry)
	if err != nil {
		return false, err
	}
	s.Length = length

	return true, nil
}

// trial inserts h as a temporary active point, runs a Pseudo-mode MST to
// measure its effect, and rolls the temporary state back completely before
// returning — h's coordinates never survive a call to trial.
func (s *State) trial(h hanan.Coord) (int, error) {
	p := s.Arena.Add(h[0], h[1], point.Hanan)
	s.Registry.Init(p)
	for _, existing := range s.Active {
		s.Edges.Add(existing, p, edge.Temporary)
	}
	s.Active = append(s.Active, p)

	length, err := mstengine.Run(mstengine.Pseudo, s.Active, s.Edges, s.Registry)

	s.Active = s.Active[:len(s.Active)-1]
	s.Edges.RemoveTemporary()
	s.Registry.PopBack()
	s.Arena.PopBack()

	return length, err
}
