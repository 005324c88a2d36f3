// Package marker implements the rollback-capable union-find ("SCC" in the
// original source's terminology, though it tracks connected components, not
// strongly connected ones — see spec.md's GLOSSARY) that backs both MST
// modes in mstengine.
//
// Each active point owns exactly one Marker. Union is weighted: the
// larger-counter marker absorbs the smaller, walking and re-pointing the
// smaller side's member list — O(size of smaller side) per union, same
// complexity trade-off the original's pointer-based Marker::AddPoint makes
// (see DESIGN.md for why this stays a member-list DSU rather than a
// path-compressed one: the committed-tree step needs to enumerate a
// component's members, which path compression alone doesn't give you).
//
// Reset (ResetMarkers in spec.md §4.1) reinitializes every marker to the
// trivial singleton partition in one linear pass, because the markers slice
// is always index-parallel to the active-points slice it was built from.
// This is what makes repeated trial MST runs cheap: no union-find journal is
// kept, the whole state is just rebuilt from scratch.
package marker
