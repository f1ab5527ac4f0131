// Package grid stores a rectangular map of open cells and walls.
//
// What:
//
//   - Grid wraps a rectangular [][]Cell with O(1) bounds-checked lookup.
//   - WithWallAt derives a grid with one extra wall without touching the
//     receiver (copy-on-write overlay on a shared, immutable base).
//   - Index/Point convert between coordinates and row-major indices, so
//     callers can keep dense per-cell bitsets.
//
// Why:
//
//   - Patrol simulations probe thousands of "what if this cell were a
//     wall?" variants of one map; deep-copying the map for each probe is
//     wasted work.
//
// Complexity:
//
//   - New:        O(W×H) time and memory (deep copy).
//   - Lookup:     O(1) on a base grid, O(1) expected with an overlay.
//   - WithWallAt: O(k) where k is the overlay size of the receiver (1 in
//     the common case).
//   - OpenCells:  O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
//
// A Grid is immutable once built and safe for concurrent readers.
package grid
