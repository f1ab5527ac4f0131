package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid rectangle.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Cell is the kind of a single grid cell.
type Cell uint8

const (
	// Open cells can be walked through.
	Open Cell = iota
	// Wall cells block movement.
	Wall
)

// String returns the map glyph for c: '.' or '#'.
func (c Cell) String() string {
	if c == Wall {
		return "#"
	}
	return "."
}

// Grid is a rectangular map of cells. It is immutable once built.
// Width and Height define dimensions; cells holds the base map row-major.
// overlay, when non-nil, holds cells that differ from the base and is
// consulted first. Derived grids share cells with their parent but never
// write to it.
type Grid struct {
	width, height int
	cells         []Cell
	overlay       map[int]Cell
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Area returns Width×Height.
func (g *Grid) Area() int { return g.width * g.height }

// Overlaid reports how many cells of g differ from its shared base.
func (g *Grid) Overlaid() int { return len(g.overlay) }
