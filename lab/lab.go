package lab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/labpatrol/compass"
	"github.com/katalvlaran/labpatrol/grid"
	"github.com/katalvlaran/labpatrol/patrol"
)

// Sentinel errors for parsing.
var (
	// ErrNoGuard indicates the map has no guard arrow.
	ErrNoGuard = errors.New("lab: no guard on the map")
	// ErrMultipleGuards indicates more than one guard arrow.
	ErrMultipleGuards = errors.New("lab: more than one guard on the map")
	// ErrUnknownCell indicates a rune outside the map alphabet.
	ErrUnknownCell = errors.New("lab: unknown map character")
)

// Lab is a parsed puzzle: the map and where the guard starts.
type Lab struct {
	Grid  *grid.Grid
	Guard patrol.Guard
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Lab, error) {
	return Parse(strings.NewReader(s))
}

// Parse reads a map from r. Rows must have equal length and exactly one
// guard arrow must be present.
func Parse(r io.Reader) (*Lab, error) {
	var (
		rows   [][]grid.Cell
		guard  patrol.Guard
		guards int
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for y := 0; sc.Scan(); y++ {
		line := strings.TrimRight(sc.Text(), "\r")
		row := make([]grid.Cell, 0, len(line))
		for x, ch := range []rune(line) {
			switch ch {
			case '.':
				row = append(row, grid.Open)
			case '#':
				row = append(row, grid.Wall)
			default:
				dir, ok := compass.ParseArrow(ch)
				if !ok {
					return nil, fmt.Errorf("%w %q at line %d column %d", ErrUnknownCell, ch, y+1, x+1)
				}
				guards++
				if guards > 1 {
					return nil, fmt.Errorf("%w: second guard at line %d column %d", ErrMultipleGuards, y+1, x+1)
				}
				guard = patrol.Guard{Pos: compass.Point{X: x, Y: y}, Dir: dir}
				row = append(row, grid.Open)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lab: read map: %w", err)
	}

	// Trailing blank lines are not part of the map.
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}

	g, err := grid.New(rows)
	if err != nil {
		return nil, fmt.Errorf("lab: %w", err)
	}
	if guards == 0 {
		return nil, ErrNoGuard
	}

	return &Lab{Grid: g, Guard: guard}, nil
}

// Render draws g with every position in path marked 'X' and the guard's
// start drawn as its arrow.
func Render(g *grid.Grid, start patrol.Guard, path []compass.Point) string {
	marks := make(map[compass.Point]struct{}, len(path))
	for _, p := range path {
		marks[p] = struct{}{}
	}

	var b strings.Builder
	b.Grow((g.Width() + 1) * g.Height())
	for y := 0; y < g.Height(); y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < g.Width(); x++ {
			p := compass.Point{X: x, Y: y}
			if p == start.Pos {
				b.WriteRune(start.Dir.Arrow())
				continue
			}
			if _, ok := marks[p]; ok {
				b.WriteByte('X')
				continue
			}
			c, _ := g.Lookup(p)
			b.WriteString(c.String())
		}
	}

	return b.String()
}
