package obstruction_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/labpatrol/compass"
	"github.com/katalvlaran/labpatrol/grid"
	"github.com/katalvlaran/labpatrol/lab"
	"github.com/katalvlaran/labpatrol/obstruction"
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

// twoLoops is an 8×8 map with exactly two loop-inducing placements,
// (0,6) and (3,6).
const twoLoops = "........\n" +
	".#..#...\n" +
	".......#\n" +
	"........\n" +
	"........\n" +
	".....#..\n" +
	".^......\n" +
	"#.....#."

func mustParse(t testing.TB, s string) *lab.Lab {
	t.Helper()
	l, err := lab.ParseString(s)
	require.NoError(t, err)
	return l
}

func pt(x, y int) compass.Point { return compass.Point{X: x, Y: y} }

// TestSearch_Sample finds the six known placements on the 10×10 map.
func TestSearch_Sample(t *testing.T) {
	l := mustParse(t, sample)

	res, err := obstruction.Search(l.Grid, l.Guard)
	require.NoError(t, err)
	assert.Equal(t, 6, res.Count)
	assert.Equal(t, 40, res.Candidates)
	assert.Equal(t, 41, res.Baseline.Len())
	assert.Equal(t,
		[]compass.Point{pt(3, 6), pt(6, 7), pt(7, 7), pt(1, 8), pt(3, 8), pt(7, 9)},
		res.Loops,
	)

	n, err := obstruction.CountBlockingObstructions(l.Grid, l.Guard)
	require.NoError(t, err)
	assert.Equal(t, 6, n)
}

// TestSearch_TwoLoops checks the constructed 8×8 map.
func TestSearch_TwoLoops(t *testing.T) {
	l := mustParse(t, twoLoops)

	res, err := obstruction.Search(l.Grid, l.Guard)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, 19, res.Baseline.Len())
	assert.Equal(t, []compass.Point{pt(0, 6), pt(3, 6)}, res.Loops)
}

// TestSearch_ExhaustiveMatches checks that restricting candidates to
// visited cells gives the same answer as probing every open cell.
func TestSearch_ExhaustiveMatches(t *testing.T) {
	for name, in := range map[string]string{"sample": sample, "twoLoops": twoLoops} {
		t.Run(name, func(t *testing.T) {
			l := mustParse(t, in)
			fast, err := obstruction.Search(l.Grid, l.Guard)
			require.NoError(t, err)
			full, err := obstruction.Search(l.Grid, l.Guard, obstruction.WithExhaustive())
			require.NoError(t, err)

			assert.Equal(t, fast.Loops, full.Loops)
			assert.Greater(t, full.Candidates, fast.Candidates)
		})
	}

	l := mustParse(t, sample)
	full, err := obstruction.Search(l.Grid, l.Guard, obstruction.WithExhaustive())
	require.NoError(t, err)
	assert.Equal(t, 91, full.Candidates)
}

// TestSearch_ExhaustiveMatchesRandom repeats the comparison on seeded
// random maps whose unobstructed patrol exits.
func TestSearch_ExhaustiveMatchesRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	checked := 0
	for i := 0; i < 200 && checked < 60; i++ {
		g, start := randomLab(t, rng, 4+rng.Intn(9), 4+rng.Intn(9), 0.12)
		if _, err := patrol.Simulate(g, start); err != nil {
			continue // baseline loops; nothing to compare
		}
		fast, err := obstruction.Search(g, start, obstruction.WithWorkers(2))
		require.NoError(t, err)
		full, err := obstruction.Search(g, start, obstruction.WithWorkers(2), obstruction.WithExhaustive())
		require.NoError(t, err)
		require.Equal(t, fast.Loops, full.Loops, "map %d:\n%s", i, g)
		checked++
	}
	assert.Positive(t, checked)
}

// TestSearch_WorkersDoNotChangeResult runs the sample with 1 and 8 workers.
func TestSearch_WorkersDoNotChangeResult(t *testing.T) {
	l := mustParse(t, sample)

	one, err := obstruction.Search(l.Grid, l.Guard, obstruction.WithWorkers(1))
	require.NoError(t, err)
	many, err := obstruction.Search(l.Grid, l.Guard, obstruction.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, one.Loops, many.Loops)
}

// TestSearch_BaseGridUntouched verifies probes never mutate the input.
func TestSearch_BaseGridUntouched(t *testing.T) {
	l := mustParse(t, sample)
	before := l.Grid.String()

	res, err := obstruction.Search(l.Grid, l.Guard, obstruction.WithExhaustive())
	require.NoError(t, err)
	assert.Equal(t, before, l.Grid.String())
	for _, p := range res.Loops {
		assert.False(t, l.Grid.IsWall(p), "base grid reports a wall at %v", p)
	}
}

// TestSearch_OnLoopAndLogger checks the callback order and the summary log.
func TestSearch_OnLoopAndLogger(t *testing.T) {
	l := mustParse(t, twoLoops)
	core, logs := observer.New(zapcore.DebugLevel)

	var seen []compass.Point
	_, err := obstruction.Search(l.Grid, l.Guard,
		obstruction.WithLogger(zap.New(core)),
		obstruction.WithOnLoop(func(p compass.Point) { seen = append(seen, p) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []compass.Point{pt(0, 6), pt(3, 6)}, seen)

	assert.Equal(t, 2, logs.FilterMessage("loop-inducing obstruction").Len())
	summary := logs.FilterMessage("obstruction search finished").All()
	require.Len(t, summary, 1)
	fields := summary[0].ContextMap()
	assert.EqualValues(t, 19, fields["visited"])
	assert.EqualValues(t, 2, fields["loops"])
}

// TestSearch_Errors covers invalid input and cancellation.
func TestSearch_Errors(t *testing.T) {
	l := mustParse(t, sample)

	_, err := obstruction.Search(nil, l.Guard)
	assert.ErrorIs(t, err, obstruction.ErrGridNil)

	_, err = obstruction.Search(l.Grid, l.Guard, obstruction.WithWorkers(-1))
	assert.ErrorIs(t, err, obstruction.ErrOptionViolation)

	_, err = obstruction.Search(l.Grid, patrol.Guard{Pos: pt(4, 0), Dir: compass.North})
	assert.ErrorIs(t, err, patrol.ErrStartOnWall)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = obstruction.Search(l.Grid, l.Guard, obstruction.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	// A patrol that already loops has no baseline to search from.
	loop := mustParse(t, ".#..\n...#\n#^..\n..#.")
	_, err = obstruction.CountBlockingObstructions(loop.Grid, loop.Guard)
	assert.ErrorIs(t, err, patrol.ErrStepBudget)
}

// randomLab builds a w×h map with roughly density walls and a north-facing
// guard on a random open cell.
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
	start := pt(rng.Intn(w), rng.Intn(h))
	rows[start.Y][start.X] = grid.Open

	g, err := grid.New(rows)
	require.NoError(t, err)
	return g, patrol.Guard{Pos: start, Dir: compass.North}
}
