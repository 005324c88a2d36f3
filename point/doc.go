// Package point defines the integer grid geometry and the typed point arena
// shared by the rest of rsmt.
//
// Every point carries a stable integer Index: an Arena owns a growing slice
// of *Point and assigns each one its position in that slice. Other packages
// (marker, edge, mstengine, steiner, route) pass *Point values around, and
// marker uses Index as the key of its owner table. This mirrors the
// teacher's pointer-graph-turned-arena approach for vertex storage (see
// lvlath/core), adapted here because the Steiner driver repeatedly appends
// and pops a trial point from the tail of the active set (spec.md §4.4) —
// an operation a plain growable slice makes O(1).
package point
