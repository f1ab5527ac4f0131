package grid

import (
	"strings"

	"github.com/katalvlaran/labpatrol/compass"
)

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// rows[y][x]. It deep-copies the input so later changes to rows do not
// leak into the grid.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]Cell, 0, w*h)
	for _, row := range rows {
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p compass.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Lookup returns the cell at p. The boolean is false when p is outside
// the grid; the patrol simulator uses that as its exit signal.
// Complexity: O(1).
func (g *Grid) Lookup(p compass.Point) (Cell, bool) {
	if !g.InBounds(p) {
		return Open, false
	}
	i := g.index(p)
	if g.overlay != nil {
		if c, ok := g.overlay[i]; ok {
			return c, true
		}
	}

	return g.cells[i], true
}

// IsWall reports whether p is in bounds and holds a wall.
func (g *Grid) IsWall(p compass.Point) bool {
	c, ok := g.Lookup(p)
	return ok && c == Wall
}

// WithWallAt returns a grid equal to g except that p is a Wall.
// g itself is left untouched and stays usable for further, independent
// derivations. Returns ErrOutOfBounds if p lies outside the grid.
// Complexity: O(k) where k = g.Overlaid().
func (g *Grid) WithWallAt(p compass.Point) (*Grid, error) {
	if !g.InBounds(p) {
		return nil, ErrOutOfBounds
	}
	overlay := make(map[int]Cell, len(g.overlay)+1)
	for i, c := range g.overlay {
		overlay[i] = c
	}
	overlay[g.index(p)] = Wall

	return &Grid{
		width:   g.width,
		height:  g.height,
		cells:   g.cells,
		overlay: overlay,
	}, nil
}

// OpenCells returns every open cell in row-major order.
// Complexity: O(W×H).
func (g *Grid) OpenCells() []compass.Point {
	var out []compass.Point
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := compass.Point{X: x, Y: y}
			if c, _ := g.Lookup(p); c == Open {
				out = append(out, p)
			}
		}
	}

	return out
}

// Index maps p to a row-major index y*Width + x. The second result is
// false when p is out of bounds.
// Complexity: O(1).
func (g *Grid) Index(p compass.Point) (int, bool) {
	if !g.InBounds(p) {
		return -1, false
	}
	return g.index(p), true
}

// Point converts a row-major index back to a coordinate.
// Complexity: O(1).
func (g *Grid) Point(idx int) compass.Point {
	return compass.Point{X: idx % g.width, Y: idx / g.width}
}

// String draws the grid with '.' and '#', one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			c, _ := g.Lookup(compass.Point{X: x, Y: y})
			b.WriteString(c.String())
		}
	}

	return b.String()
}

// index is the unchecked form of Index.
func (g *Grid) index(p compass.Point) int {
	return p.Y*g.width + p.X
}
