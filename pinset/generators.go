package pinset

import "fmt"

// Grid returns rows*cols pins evenly spaced on a gridSize×gridSize grid, in
// row-major order. rows and cols must each be ≥ 1 and fit within gridSize;
// a single row or column is placed at coordinate 0, multiple rows/columns
// are spaced as evenly as the grid allows.
func Grid(gridSize, rows, cols int) ([][2]int, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("Grid(rows=%d, cols=%d): %w", rows, cols, ErrTooFewPins)
	}
	if rows > gridSize || cols > gridSize {
		return nil, fmt.Errorf("Grid(rows=%d, cols=%d, gridSize=%d): %w", rows, cols, gridSize, ErrGridTooSmall)
	}

	xs := spacedCoords(gridSize, cols)
	ys := spacedCoords(gridSize, rows)

	pins := make([][2]int, 0, rows*cols)
	for _, y := range ys {
		for _, x := range xs {
			pins = append(pins, [2]int{x, y})
		}
	}
	return pins, nil
}

// spacedCoords returns count coordinates spread as evenly as possible across
// [0, gridSize), ascending. count == 1 yields just {0}.
func spacedCoords(gridSize, count int) []int {
	if count == 1 {
		return []int{0}
	}
	out := make([]int, count)
	step := float64(gridSize-1) / float64(count-1)
	for i := 0; i < count; i++ {
		out[i] = int(float64(i) * step)
	}
	return out
}

// ColinearRun returns n pins spaced one unit apart along the row y, starting
// at x=0. n must be ≥ 1 and fit within gridSize.
func ColinearRun(gridSize, y, n int) ([][2]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("ColinearRun(n=%d): %w", n, ErrTooFewPins)
	}
	if n > gridSize {
		return nil, fmt.Errorf("ColinearRun(n=%d, gridSize=%d): %w", n, gridSize, ErrGridTooSmall)
	}

	pins := make([][2]int, n)
	for i := 0; i < n; i++ {
		pins[i] = [2]int{i, y}
	}
	return pins, nil
}

// RandomSparse returns n distinct, uniformly sampled pins on a
// gridSize×gridSize grid. Deterministic for a fixed seed (WithSeed); without
// one it falls back to a fixed default seed, never a time-based source.
func RandomSparse(gridSize, n int, opts ...Option) ([][2]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomSparse(n=%d): %w", n, ErrTooFewPins)
	}
	if n > gridSize*gridSize {
		return nil, fmt.Errorf("RandomSparse(n=%d, gridSize=%d): %w", n, gridSize, ErrGridTooSmall)
	}

	cfg := newConfig(opts...)
	seen := make(map[[2]int]bool, n)
	pins := make([][2]int, 0, n)
	for len(pins) < n {
		c := [2]int{cfg.rng.Intn(gridSize), cfg.rng.Intn(gridSize)}
		if seen[c] {
			continue
		}
		seen[c] = true
		pins = append(pins, c)
	}
	return pins, nil
}

// BuiltinSmokeNet returns the literal six-pin net the original's main.cc
// hand-checked (SMT smt(5, 6) with pins (0,0) (2,0) (4,0) (1,2) (4,4) (0,4)).
// spec.md §8 scenario 6 and the smt package's TestInstance_SixPinSmokeNet
// (which spells the same pins out literally) both exercise this exact net.
func BuiltinSmokeNet() (gridSize int, pins [][2]int) {
	return 5, [][2]int{{0, 0}, {2, 0}, {4, 0}, {1, 2}, {4, 4}, {0, 4}}
}
