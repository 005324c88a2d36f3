package pinset

import "errors"

// ErrTooFewPins indicates a requested pin count is smaller than a
// generator's minimum (usually 1).
var ErrTooFewPins = errors.New("pinset: pin count too small")

// ErrGridTooSmall indicates gridSize can't accommodate the requested layout
// (e.g. a Grid(rows, cols) wider or taller than the grid itself).
var ErrGridTooSmall = errors.New("pinset: grid too small for requested layout")
