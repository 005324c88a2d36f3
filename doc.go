// Package rsmt (module github.com/rsmtlab/rsmt) builds approximately-minimum
// rectilinear Steiner trees for VLSI pin nets on a square integer grid, and
// realizes them as two-layer (M2/M3) routing with via insertion.
//
//	A deterministic, single-threaded library that brings together:
//
//	  • Geometry & point storage: point/
//	  • Rollback-capable union-find: marker/
//	  • Length-ordered candidate edges: edge/
//	  • Hanan-grid candidate generation: hanan/
//	  • Two-mode (trial/committed) Kruskal MST: mstengine/
//	  • Greedy Steiner-point insertion: steiner/
//	  • Layer assignment & via insertion: route/
//	  • The public orchestrator: smt/
//
// Supporting packages: pinset/ (deterministic fixture nets), netxml/
// (benchmark XML reader + solution XML writer), cmd/rsmtctl (CLI).
//
// Quick ASCII example — a plus-shaped net gains one Steiner point:
//
//	    |
//	  --+--
//	    |
//
// See smt.New, smt.Instance.AddPin and smt.Instance.Build for the entry
// points, and SPEC_FULL.md at the repository root for the full design.
package rsmt
