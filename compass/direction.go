package compass

// Valid reports whether d is one of the eight defined headings.
func (d Direction) Valid() bool {
	return d <= NorthWest
}

// IsCardinal reports whether d is North, East, South or West.
func (d Direction) IsCardinal() bool {
	return d.Valid() && d%2 == 0
}

// Offset returns the (dx, dy) unit step for d. An invalid direction
// yields (0, 0).
func (d Direction) Offset() (dx, dy int) {
	if !d.Valid() {
		return 0, 0
	}
	o := offsets[d]
	return o[0], o[1]
}

// CardinalRight returns the cardinal heading 90° clockwise from d:
// North→East→South→West→North. Diagonal or invalid directions are
// returned unchanged.
func (d Direction) CardinalRight() Direction {
	if !d.IsCardinal() {
		return d
	}
	return (d + 2) % 8
}

// Right returns the heading 45° clockwise from d.
func (d Direction) Right() Direction {
	return (d + 1) % 8
}

// Opposite returns the heading 180° from d.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// CardinalIndex maps N, E, S, W to 0, 1, 2, 3. It returns -1 for any
// other value.
func (d Direction) CardinalIndex() int {
	if !d.IsCardinal() {
		return -1
	}
	return int(d) / 2
}

// String returns the heading name, e.g. "North".
func (d Direction) String() string {
	if !d.Valid() {
		return "Direction(?)"
	}
	return names[d]
}

// Arrow returns the single-rune arrow used in puzzle maps for a cardinal
// heading: '^', '>', 'v' or '<'. Other directions return '?'.
func (d Direction) Arrow() rune {
	switch d {
	case North:
		return '^'
	case East:
		return '>'
	case South:
		return 'v'
	case West:
		return '<'
	}
	return '?'
}

// ParseArrow is the inverse of Arrow.
func ParseArrow(r rune) (Direction, bool) {
	switch r {
	case '^':
		return North, true
	case '>':
		return East, true
	case 'v':
		return South, true
	case '<':
		return West, true
	}
	return 0, false
}
