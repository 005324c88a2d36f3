// Package hanan generates the Hanan-grid candidate Steiner points for a pin
// set (spec.md §4.3): every grid intersection lying on a vertical line
// through some pin's X and a horizontal line through some pin's Y, excluding
// pins themselves. Hanan's theorem guarantees an optimal rectilinear Steiner
// tree has all of its Steiner points on this grid, which is why the greedy
// driver in package steiner only ever needs to consider these candidates.
package hanan
