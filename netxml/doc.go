// Package netxml implements the benchmark/solution XML documents of
// spec.md §6: reading a `<net grid_size=".." pin_count="..">` benchmark with
// `<point type="pin" x=".." y=".."/>` children, and writing a solution
// document with `<point x y layer type/>` and `<segment x1 y1 x2 y2
// layer/>` children.
//
// Uses encoding/xml (standard library): no repository in the retrieval pack
// imports a third-party XML library, so there is nothing to adopt for this
// concern — see DESIGN.md.
package netxml
