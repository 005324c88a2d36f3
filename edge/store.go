package edge

import "github.com/rsmtlab/rsmt/point"

// Status distinguishes a permanently-valid candidate edge from one that only
// exists to evaluate a trial Hanan insertion.
type Status int

const (
	// Valid marks a permanent candidate edge.
	Valid Status = iota
	// Temporary marks an edge incident to the currently-trialed point; these
	// are removed wholesale once the trial concludes.
	Temporary
)

// Edge is a candidate connection between two active points. P1/P2 are kept
// in exactly the order passed to Store.Add — never canonicalized — because
// route's diagonal-split corner formula (spec.md §9, SPEC_FULL.md §13)
// depends on that original insertion order.
type Edge struct {
	P1, P2 *point.Point
	Status Status
	Length int
}

// IsM2 reports whether the edge is horizontal (same Y): an M2-layer segment.
func (e *Edge) IsM2() bool {
	return e.P1.Y == e.P2.Y
}

// IsM3 reports whether the edge is vertical (same X): an M3-layer segment.
func (e *Edge) IsM3() bool {
	return e.P1.X == e.P2.X
}

// IsDiagonal reports whether the edge is neither horizontal nor vertical —
// a "both-layers" edge that route must split at a via corner.
func (e *Edge) IsDiagonal() bool {
	return !e.IsM2() && !e.IsM3()
}

// IsTemporary reports whether the edge has Temporary status.
func (e *Edge) IsTemporary() bool {
	return e.Status == Temporary
}

// Store holds the globally length-sorted candidate edge list plus the
// separate committed-edges list that mstengine's Real mode populates.
type Store struct {
	sorted    []*Edge
	committed []*Edge
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// New constructs an Edge between p1 and p2 without touching any Store. It is
// exported for route, which builds replacement edges (the L-shape legs of a
// split diagonal) outside the candidate-edge lifecycle entirely.
func New(p1, p2 *point.Point, status Status) *Edge {
	return &Edge{
		P1:     p1,
		P2:     p2,
		Status: status,
		Length: point.ManhattanDistance(p1.X, p1.Y, p2.X, p2.Y),
	}
}

// Add creates an edge between p1 and p2 with the given status and inserts it
// into the length-sorted list, positioned immediately before the first
// existing edge of strictly greater length (so edges of equal length keep
// the order they were added in). Returns the created Edge.
func (s *Store) Add(p1, p2 *point.Point, status Status) *Edge {
	e := New(p1, p2, status)

	idx := len(s.sorted)
	for i, existing := range s.sorted {
		if existing.Length > e.Length {
			idx = i
			break
		}
	}
	s.sorted = append(s.sorted, nil)
	copy(s.sorted[idx+1:], s.sorted[idx:])
	s.sorted[idx] = e

	return e
}

// Sorted returns the candidate edges in non-decreasing length order.
func (s *Store) Sorted() []*Edge {
	return s.sorted
}

// RemoveTemporary drops every Temporary-status edge from the sorted list,
// preserving the relative order of the remaining (Valid) edges.
func (s *Store) RemoveTemporary() {
	out := s.sorted[:0]
	for _, e := range s.sorted {
		if !e.IsTemporary() {
			out = append(out, e)
		}
	}
	s.sorted = out
}

// Committed returns the edges accepted by the most recent Real-mode MST run.
func (s *Store) Committed() []*Edge {
	return s.committed
}

// ResetCommitted clears the committed-edges list; mstengine's Real mode
// calls this at the start of every run so each recomputation yields a fresh
// tree rather than accumulating edges across calls.
func (s *Store) ResetCommitted() {
	s.committed = s.committed[:0]
}

// Commit appends e to the committed-edges list.
func (s *Store) Commit(e *Edge) {
	s.committed = append(s.committed, e)
}

// RemoveCommitted drops e from the committed-edges list. route does not call
// it: route.Finalize leaves this list untouched and returns its own split
// edge set. It is a linear scan; the committed list is bounded by pin_count +
// |Hanan|, the same bound the original relies on for its member lists.
func (s *Store) RemoveCommitted(e *Edge) {
	for i, c := range s.committed {
		if c == e {
			s.committed = append(s.committed[:i], s.committed[i+1:]...)
			return
		}
	}
}
