package obstruction

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/labpatrol/compass"
	"github.com/katalvlaran/labpatrol/grid"
	"github.com/katalvlaran/labpatrol/patrol"
)

// CountBlockingObstructions returns how many single-wall placements trap
// the guard starting at start. It is Search with default options.
func CountBlockingObstructions(g *grid.Grid, start patrol.Guard) (int, error) {
	res, err := Search(g, start)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// Search probes candidate wall placements and reports those that make the
// patrol loop. See the package documentation for candidate selection.
func Search(g *grid.Grid, start patrol.Guard, opts ...Option) (*Result, error) {
	// 1. Validate input and options
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	began := time.Now()

	// 2. Unobstructed patrol
	base, err := patrol.Simulate(g, start, patrol.WithContext(o.Ctx))
	if err != nil {
		return nil, fmt.Errorf("obstruction: baseline patrol: %w", err)
	}

	// 3. Candidate cells, row-major
	cands := candidates(g, start, base, o.Exhaustive)

	// 4. Probe every candidate on a bounded pool; each writes its own slot
	looped := make([]bool, len(cands))
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i, c := range cands {
		i, c := i, c
		eg.Go(func() error {
			ok, err := probe(ctx, g, start, c)
			if err != nil {
				return fmt.Errorf("obstruction: probe %s: %w", c, err)
			}
			looped[i] = ok
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 5. Collect
	res := &Result{Candidates: len(cands), Baseline: base}
	for i, ok := range looped {
		if !ok {
			continue
		}
		res.Loops = append(res.Loops, cands[i])
		o.Logger.Debug("loop-inducing obstruction",
			zap.Int("x", cands[i].X), zap.Int("y", cands[i].Y))
		if o.OnLoop != nil {
			o.OnLoop(cands[i])
		}
	}
	res.Count = len(res.Loops)

	o.Logger.Info("obstruction search finished",
		zap.Int("visited", base.Len()),
		zap.Int("candidates", res.Candidates),
		zap.Int("loops", res.Count),
		zap.Bool("exhaustive", o.Exhaustive),
		zap.Int("workers", o.Workers),
		zap.Duration("elapsed", time.Since(began)),
	)

	return res, nil
}

// candidates lists the cells worth probing in row-major order: the
// visited cells (or every open cell when exhaustive) except the start.
func candidates(g *grid.Grid, start patrol.Guard, base *patrol.Result, exhaustive bool) []compass.Point {
	if exhaustive {
		open := g.OpenCells()
		out := make([]compass.Point, 0, len(open))
		for _, p := range open {
			if p != start.Pos {
				out = append(out, p)
			}
		}
		return out
	}

	out := make([]compass.Point, 0, base.Len())
	for _, p := range base.Path {
		if p == start.Pos || g.IsWall(p) {
			continue
		}
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b compass.Point) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})

	return out
}

// probe reports whether a wall at c makes the patrol from start loop.
func probe(ctx context.Context, g *grid.Grid, start patrol.Guard, c compass.Point) (bool, error) {
	pg, err := g.WithWallAt(c)
	if err != nil {
		return false, err
	}
	_, err = patrol.Simulate(pg, start, patrol.WithContext(ctx), patrol.WithCycleDetection())
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, patrol.ErrCycleDetected):
		return true, nil
	default:
		return false, err
	}
}
