// Package mstengine implements the two-mode Kruskal MST engine of spec.md
// §4.2: a single scan over edge.Store's length-sorted candidates, run either
// in Pseudo mode (union-find bookkeeping only, for cheap trial evaluation)
// or Real mode (also records accepted edges in edge.Store's committed list,
// for the current best tree; no edge is registered on its endpoints).
//
// Grounded on lvlath/algorithms/prim_kruskal.go's Kruskal: sort edges once,
// walk them in order, union-find to reject edges that would close a cycle.
// The difference here is the edges arrive pre-sorted from edge.Store (no
// sort.Slice needed) and the loop is parameterized by mode rather than
// being a single fixed pass, because the Steiner driver needs the cheap
// pseudo variant for O(Hanan candidates) trial evaluations per iteration.
package mstengine
