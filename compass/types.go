package compass

import "fmt"

// Point is an integer grid coordinate. Values may be negative or lie
// outside any grid; callers bounds-check before indexing.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Step returns the neighbour of p one cell away in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Offset()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the eight compass headings, ordered clockwise
// starting at North.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// offsets is indexed by Direction; same clockwise order as the
// 8-neighbourhood table used for grid traversals.
var offsets = [...][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

var names = [...]string{
	North:     "North",
	NorthEast: "NorthEast",
	East:      "East",
	SouthEast: "SouthEast",
	South:     "South",
	SouthWest: "SouthWest",
	West:      "West",
	NorthWest: "NorthWest",
}

// Cardinals lists the four cardinal headings in clockwise order.
var Cardinals = [4]Direction{North, East, South, West}
