// Package marker — registry.go implements the Registry that owns every
// Marker and the point->marker association, grounded on the weighted-union
// DSU in lvlath/algorithms/prim_kruskal/kruskal.go (parent/rank maps), but
// keeping the member list lvlath's path-compressed DSU discards, because
// spec.md's committed-tree step needs to enumerate a component's members.
package marker

import "github.com/rsmtlab/rsmt/point"

// Marker is one connected component's union-find node: a stable ID, a member
// count, and the actual member points (spec.md §3 Marker).
type Marker struct {
	ID      int
	Counter int
	Members []*point.Point
}

func (m *Marker) reinit(p *point.Point) {
	m.Counter = 1
	m.Members = m.Members[:0]
	m.Members = append(m.Members, p)
}

// Registry owns one Marker per currently-active point, index-parallel to the
// active-points slice it was built against, plus an owner table mapping a
// point's Index to the ID of the Marker it currently belongs to (the
// original's direct Point::marker pointer).
type Registry struct {
	markers []*Marker
	owner   []int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Len returns the number of markers currently held (== number of active
// points the registry was built against).
func (r *Registry) Len() int {
	return len(r.markers)
}

// Init creates a fresh singleton marker for a newly-activated point p and
// appends it to the registry. The new marker's ID equals its position in the
// registry, which by construction equals p's insertion index into the
// parallel active-points arena (spec.md §3 invariant).
func (r *Registry) Init(p *point.Point) *Marker {
	id := len(r.markers)
	m := &Marker{ID: id}
	m.reinit(p)
	r.markers = append(r.markers, m)
	r.setOwner(p.Index, id)
	return m
}

// PopBack discards the most recently added marker — the rollback half of
// Init, used when a temporary Steiner point's trial is rejected.
func (r *Registry) PopBack() {
	r.markers = r.markers[:len(r.markers)-1]
}

// MarkerOf returns the Marker currently responsible for p.
func (r *Registry) MarkerOf(p *point.Point) *Marker {
	return r.markers[r.owner[p.Index]]
}

// SameComponent reports whether p1 and p2 share a marker (spec.md's "in one
// SCC" edge predicate).
func (r *Registry) SameComponent(p1, p2 *point.Point) bool {
	return r.MarkerOf(p1).ID == r.MarkerOf(p2).ID
}

// ComponentSize returns the member count of the marker owning p — the
// original's Point::GetSCCCounter, kept as a first-class query per
// SPEC_FULL.md §12.
func (r *Registry) ComponentSize(p *point.Point) int {
	return r.MarkerOf(p).Counter
}

// Union merges the components of p1 and p2, if distinct. The marker with the
// larger counter absorbs the smaller one's members (weighted union, spec.md
// §4.1 step 2): ties are broken by leaving p1's marker as the absorber,
// matching the original's "swap only if point1's counter is strictly less".
// A no-op if p1 and p2 already share a marker.
func (r *Registry) Union(p1, p2 *point.Point) {
	m1, m2 := r.MarkerOf(p1), r.MarkerOf(p2)
	if m1.ID == m2.ID {
		return
	}
	if m1.Counter < m2.Counter {
		m1, m2 = m2, m1
	}
	for _, mp := range m2.Members {
		r.setOwner(mp.Index, m1.ID)
		m1.Members = append(m1.Members, mp)
	}
	m1.Counter += m2.Counter
	m2.Counter = 0
	m2.Members = nil
}

// Reset reinitializes every marker to the singleton state for its owning
// point. activePoints must be index-parallel to the registry (the same slice
// order the registry was built from): markers[i] always belongs to
// activePoints[i]. This is a single O(n) pass, no journaling required.
func (r *Registry) Reset(activePoints []*point.Point) {
	for i, p := range activePoints {
		r.markers[i].ID = i
		r.markers[i].reinit(p)
		r.setOwner(p.Index, i)
	}
}

func (r *Registry) setOwner(pointIndex, markerID int) {
	for len(r.owner) <= pointIndex {
		r.owner = append(r.owner, -1)
	}
	r.owner[pointIndex] = markerID
}
