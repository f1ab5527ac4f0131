package compass_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/labpatrol/compass"
)

// TestCardinalRight_Cycle verifies the clockwise turn order N→E→S→W→N.
func TestCardinalRight_Cycle(t *testing.T) {
	cases := []struct {
		in, want compass.Direction
	}{
		{compass.North, compass.East},
		{compass.East, compass.South},
		{compass.South, compass.West},
		{compass.West, compass.North},
	}
	for _, tc := range cases {
		t.Run(tc.in.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.CardinalRight())
		})
	}

	// Four right turns bring every cardinal back to itself.
	for _, d := range compass.Cardinals {
		assert.Equal(t, d, d.CardinalRight().CardinalRight().CardinalRight().CardinalRight())
	}
}

// TestCardinalRight_Diagonal leaves diagonals untouched.
func TestCardinalRight_Diagonal(t *testing.T) {
	for _, d := range []compass.Direction{compass.NorthEast, compass.SouthEast, compass.SouthWest, compass.NorthWest} {
		assert.False(t, d.IsCardinal(), d.String())
		assert.Equal(t, d, d.CardinalRight())
		assert.Equal(t, -1, d.CardinalIndex())
	}
}

// TestOffset checks the screen-space (y down) step table.
func TestOffset(t *testing.T) {
	cases := map[compass.Direction][2]int{
		compass.North:     {0, -1},
		compass.NorthEast: {1, -1},
		compass.East:      {1, 0},
		compass.SouthEast: {1, 1},
		compass.South:     {0, 1},
		compass.SouthWest: {-1, 1},
		compass.West:      {-1, 0},
		compass.NorthWest: {-1, -1},
	}
	for d, want := range cases {
		dx, dy := d.Offset()
		assert.Equal(t, want, [2]int{dx, dy}, d.String())
		// Opposite headings cancel out.
		ox, oy := d.Opposite().Offset()
		assert.Equal(t, [2]int{0, 0}, [2]int{dx + ox, dy + oy}, d.String())
	}

	dx, dy := compass.Direction(42).Offset()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
	assert.False(t, compass.Direction(42).Valid())
}

// TestPointStep moves a point one cell in each cardinal direction.
func TestPointStep(t *testing.T) {
	p := compass.Point{X: 4, Y: 6}
	assert.Equal(t, compass.Point{X: 4, Y: 5}, p.Step(compass.North))
	assert.Equal(t, compass.Point{X: 5, Y: 6}, p.Step(compass.East))
	assert.Equal(t, compass.Point{X: 4, Y: 7}, p.Step(compass.South))
	assert.Equal(t, compass.Point{X: 3, Y: 6}, p.Step(compass.West))
	assert.Equal(t, compass.Point{X: 0, Y: 0}, compass.Point{X: 1, Y: -1}.Add(compass.Point{X: -1, Y: 1}))
	assert.Equal(t, "(4,6)", p.String())
}

// TestArrows round-trips the map arrows.
func TestArrows(t *testing.T) {
	for i, d := range compass.Cardinals {
		assert.Equal(t, i, d.CardinalIndex())
		got, ok := compass.ParseArrow(d.Arrow())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := compass.ParseArrow('#')
	assert.False(t, ok)
	assert.Equal(t, '?', compass.NorthEast.Arrow())
}
