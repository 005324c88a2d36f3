package point

// Arena owns a growing, indexable slice of *Point. It is the index-based
// stand-in for the original's std::list<Point*> with pointer wiring: every
// Point gets an Index equal to its position, and PopBack (used to discard a
// trial Steiner point, spec.md §4.4 step 2) is O(1) and never invalidates
// earlier indices.
type Arena struct {
	points []*Point
}

// NewArena returns an empty Arena.
func NewArena() *Arena {
	return &Arena{}
}

// Add appends a new Point with the given coordinates and type, assigning it
// the next sequential Index (equal to its position in the arena). It returns
// the created Point.
func (a *Arena) Add(x, y int, t Type) *Point {
	p := &Point{Index: len(a.points), X: x, Y: y, Type: t}
	a.points = append(a.points, p)
	return p
}

// Len returns the number of points currently held.
func (a *Arena) Len() int {
	return len(a.points)
}

// At returns the point at index i. It panics on an out-of-range index, same
// as a slice index would — callers in this module never pass an untrusted i.
func (a *Arena) At(i int) *Point {
	return a.points[i]
}

// All returns the live backing slice in insertion order. Callers must treat
// it as read-only; mutating Point.Type in place is fine (finalization does
// exactly that), but the slice itself must not be reordered or appended to
// except via Arena's own methods.
func (a *Arena) All() []*Point {
	return a.points
}

// PopBack removes and discards the most recently added point. It is used to
// roll back a temporary Steiner point once its trial MST has been measured.
// PopBack panics if the arena is empty.
func (a *Arena) PopBack() {
	a.points = a.points[:len(a.points)-1]
}
