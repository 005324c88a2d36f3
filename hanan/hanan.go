package hanan

// Coord is a plain (x, y) grid coordinate, used here instead of *point.Point
// because candidate generation runs before any point.Arena involvement — the
// smt package turns these into Hanan-typed arena points afterward.
type Coord [2]int

// Candidates returns every Hanan intersection for gridSize and pins, ordered
// lexicographically ascending by (x, y) — x primary, matching spec.md §4.3's
// required emission order (the test suite depends on it, even though the
// greedy driver itself does not).
//
// The original walks every one of gridSize² cells; this only visits columns
// that actually carry a pin, which is equivalent whenever gridSize > 0 since
// a column with no pin can never satisfy colHasPin[x] — O(gridSize +
// pinCount·gridSize) instead of O(gridSize²) when pins are sparse.
func Candidates(gridSize int, pins []Coord) []Coord {
	rowHasPin := make([]bool, gridSize)
	colHasPin := make([]bool, gridSize)
	isPin := make(map[Coord]bool, len(pins))
	for _, p := range pins {
		colHasPin[p[0]] = true
		rowHasPin[p[1]] = true
		isPin[p] = true
	}

	var out []Coord
	for x := 0; x < gridSize; x++ {
		if !colHasPin[x] {
			continue
		}
		for y := 0; y < gridSize; y++ {
			if !rowHasPin[y] {
				continue
			}
			c := Coord{x, y}
			if isPin[c] {
				continue
			}
			out = append(out, c)
		}
	}
	return out
}
