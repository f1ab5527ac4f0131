package patrol_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labpatrol/compass"
	"github.com/katalvlaran/labpatrol/grid"
	"github.com/katalvlaran/labpatrol/lab"
	"github.com/katalvlaran/labpatrol/patrol"
)

const sample = "....#.....\n" +
	".........#\n" +
	"..........\n" +
	"..#.......\n" +
	".......#..\n" +
	"..........\n" +
	".#..^.....\n" +
	"........#.\n" +
	"#.........\n" +
	"......#..."

// mustParse parses a map or fails the test.
func mustParse(t testing.TB, s string) *lab.Lab {
	t.Helper()
	l, err := lab.ParseString(s)
	require.NoError(t, err)
	return l
}

// randomLab builds a w×h map with roughly density walls and a guard on
// a random open cell facing a random cardinal heading.
func randomLab(t testing.TB, rng *rand.Rand, w, h int, density float64) (*grid.Grid, patrol.Guard) {
	t.Helper()
	rows := make([][]grid.Cell, h)
	for y := range rows {
		rows[y] = make([]grid.Cell, w)
		for x := range rows[y] {
			if rng.Float64() < density {
				rows[y][x] = grid.Wall
			}
		}
	}
	start := compass.Point{X: rng.Intn(w), Y: rng.Intn(h)}
	rows[start.Y][start.X] = grid.Open

	g, err := grid.New(rows)
	require.NoError(t, err)
	return g, patrol.Guard{Pos: start, Dir: compass.Cardinals[rng.Intn(4)]}
}
