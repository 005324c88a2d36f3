// Package steiner implements the greedy Hanan-point iteration driver of
// spec.md §4.4: trial-insert each remaining Hanan candidate as a temporary
// point, keep the strict-best improver, commit it permanently, and repeat to
// fixpoint.
//
// Grounded on lvlath/prim_kruskal's incremental-MST pattern generalized with
// mstengine's two modes: a trial uses Pseudo (union-find bookkeeping only,
// rolled back via Arena.PopBack/Registry.PopBack/edge.Store.RemoveTemporary)
// and a commit uses Real (permanently links the winner and records it on
// edge.Store's committed list).
package steiner
