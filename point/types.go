package point

// Type is the closed set of point classifications a Point can carry over its
// lifetime. The zero value is Pin, matching the original SMT::PointType
// enumeration's first member.
type Type int

const (
	// Pin is a user-supplied terminal, present before BuildSMT.
	Pin Type = iota
	// Hanan is a candidate Steiner site derived from pin coordinates.
	Hanan
	// Pseudo is a committed Steiner point chosen by the greedy driver.
	Pseudo
	// PinsM2 is the via duplicate of a pin onto the M2 (horizontal) layer.
	PinsM2
	// M2M3 is a via between the M2 and M3 layers, at a corner or above a pin.
	M2M3
	// Invalid marks a committed Pseudo point that degenerated onto a single
	// axis (no M2 edge and M3 edge both incident) — kept for inspection.
	Invalid
)

// String renders the type the way diagnostic dumps (DebugDump) want it; it
// is not used for the closed-set comparisons themselves, nor by netxml,
// which has its own layer/type mapping.
func (t Type) String() string {
	switch t {
	case Pin:
		return "Pin"
	case Hanan:
		return "Hanan"
	case Pseudo:
		return "Pseudo"
	case PinsM2:
		return "Pins_M2"
	case M2M3:
		return "M2_M3"
	case Invalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Point is a single grid location with a stable Index assigned by the Arena
// that owns it, its coordinates, and its current Type. Type is mutable in
// place during finalization (a Pseudo point may become Invalid or M2_M3);
// everything else is immutable once constructed.
type Point struct {
	Index int
	X, Y  int
	Type  Type
}

// IsPin reports whether p is a user-supplied terminal.
func (p *Point) IsPin() bool {
	return p.Type == Pin
}

// ManhattanDistance returns |x1-x2| + |y1-y2|, the rectilinear metric used
// throughout rsmt for edge lengths and bounding-box perimeters.
func ManhattanDistance(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// BoundingBox is the smallest axis-aligned rectangle containing a set of
// points, expressed as inclusive corners.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY int
}

// HalfPerimeter returns (MaxX-MinX)+(MaxY-MinY), the half-perimeter wirelength
// lower bound used by the "Lower bound" law in spec.md §8.
func (b BoundingBox) HalfPerimeter() int {
	return (b.MaxX - b.MinX) + (b.MaxY - b.MinY)
}

// BoundsOf computes the BoundingBox of xs/ys pairs. It panics on an empty
// input slice.
func BoundsOf(coords [][2]int) BoundingBox {
	b := BoundingBox{
		MinX: coords[0][0], MaxX: coords[0][0],
		MinY: coords[0][1], MaxY: coords[0][1],
	}
	for _, c := range coords[1:] {
		if c[0] < b.MinX {
			b.MinX = c[0]
		}
		if c[0] > b.MaxX {
			b.MaxX = c[0]
		}
		if c[1] < b.MinY {
			b.MinY = c[1]
		}
		if c[1] > b.MaxY {
			b.MaxY = c[1]
		}
	}
	return b
}
