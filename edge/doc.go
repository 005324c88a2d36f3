// Package edge implements the candidate-edge store described in spec.md
// §3 (Edge) and §4.2: a length-ordered sequence of edges over the active
// point set, with insertion-on-add ordering (new edges are inserted before
// the first strictly-longer edge, so equal-length edges keep creation
// order) and a Status tag distinguishing permanent (Valid) edges from the
// Temporary ones created while a Hanan candidate is on trial.
//
// The sort-on-insert approach mirrors the teacher's length-ordered edge
// list in lvlath/algorithms/prim_kruskal.go (there achieved with sort.Slice
// up front since that package's graphs are static); ours needs incremental
// insertion because the candidate set grows one point — and len(points)-1
// new edges — at a time.
package edge
