// Package route implements the Finalizer of spec.md §4.5: turning a
// committed rectilinear tree (pins + Pseudo Steiner points, single set of
// edges that may run diagonally) into a two-layer routing realization —
// classifying every non-pin point as an M2_M3 via or an Invalid degenerate,
// duplicating each pin into its Pins_M2 (and, where needed, M2_M3) via
// stack, and splitting every diagonal edge into an L-shape meeting at a new
// M2_M3 corner point.
//
// Diagonal edges are split before point classification runs, not after:
// spec.md §8 scenario 3 (two diagonal pins) only produces a correct
// Pins_M2/M2_M3 via stack at the pin if the pin's post-split single-layer
// edges are what "at least one M3 edge" is checked against — the original
// diagonal edge itself is neither M2 nor M3 and so would never qualify a
// pin for the M2_M3 via on its own.
package route
