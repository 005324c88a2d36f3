// Package smt wires point, marker, edge, hanan, mstengine, steiner and route
// into the public operations of spec.md §4.6: New, AddPin, Build, Points,
// Edges. Instance owns every point, edge and marker it creates; nothing is
// shared across instances, matching spec.md §5's single-threaded,
// non-re-entrant resource model.
//
// Modeled on lvlath/builder's single-orchestrator shape (one BuildGraph
// entry point wiring options into constructors): here Build is the single
// entry point wiring the pin-only MST, the Hanan/Steiner loop and
// finalization into one idempotent call.
package smt
