// Package compass provides the small value types shared by every grid
// package in labpatrol: an integer Point and an 8-way Direction.
//
// What:
//
//   - Point is a comparable (X, Y) pair; it is safe to use as a map key.
//   - Direction enumerates N, NE, E, SE, S, SW, W, NW in clockwise order.
//   - Offset returns the fixed (dx, dy) step for a direction. Y grows
//     downward, so North is (0, -1).
//   - CardinalRight rotates a cardinal direction 90° clockwise.
//
// The patrol simulator only ever uses the four cardinal values; the
// diagonals exist because the rest of the toolkit walks 8-neighbourhoods.
//
// Complexity:
//
//   - Every operation is O(1) and allocation-free.
package compass
