package patrol

import (
	"fmt"

	"github.com/katalvlaran/labpatrol/grid"
)

// pollMask sets how often the context is polled: every 1024 iterations.
const pollMask = 1<<10 - 1

// walker encapsulates state during one simulation.
type walker struct {
	grid   *grid.Grid
	opts   Options
	res    *Result
	states []bool // (cell, heading) fingerprints; nil in CountCells mode
	budget int
}

// Simulate runs a patrol from start until the guard leaves g.
//
// In CountCells mode it returns the distinct positions visited. In
// DetectCycle mode it returns a *CycleError (matching ErrCycleDetected) as
// soon as a (position, heading) state repeats. The partially filled Result
// is returned alongside any error.
func Simulate(g *grid.Grid, start Guard, opts ...Option) (*Result, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrGridNil
	}
	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}
	if !start.Dir.IsCardinal() {
		return nil, fmt.Errorf("%w: got %s", ErrDiagonalHeading, start.Dir)
	}
	cell, ok := g.Lookup(start.Pos)
	if !ok {
		return nil, fmt.Errorf("%w: %s on a %dx%d grid", ErrStartOutOfBounds, start.Pos, g.Width(), g.Height())
	}
	if cell == grid.Wall {
		return nil, fmt.Errorf("%w: %s", ErrStartOnWall, start.Pos)
	}

	// 2. Allocate visit records
	area := g.Area()
	res := &Result{
		visited: make([]bool, area),
		width:   g.Width(),
	}
	w := &walker{
		grid:   g,
		opts:   sopts,
		res:    res,
		budget: 4 * area,
	}
	if sopts.Mode == DetectCycle {
		w.states = make([]bool, 4*area)
	}

	return w.run(start)
}

// run drives the state machine. Each pass looks one cell ahead and then
// either exits, turns or moves.
func (w *walker) run(start Guard) (*Result, error) {
	cur := start
	w.visit(cur)
	w.mark(cur)

	for {
		w.res.Iterations++

		// 1. Enforce the 4×W×H bound
		if w.res.Iterations > w.budget {
			w.res.Final = cur
			return w.res, fmt.Errorf("%w: %d iterations on a %dx%d grid",
				ErrStepBudget, w.budget, w.grid.Width(), w.grid.Height())
		}

		// 2. Cancellation check
		if (w.res.Iterations-1)&pollMask == 0 {
			if err := w.opts.Ctx.Err(); err != nil {
				w.res.Final = cur
				return w.res, err
			}
		}

		// 3. Look ahead: off the map means the patrol is over
		ahead := cur.Ahead()
		cell, ok := w.grid.Lookup(ahead)
		if !ok {
			w.res.Final = cur
			return w.res, nil
		}

		// 4. Turn in place or step forward
		if cell == grid.Wall {
			cur = cur.TurnRight()
			w.res.Turns++
		} else {
			cur = cur.MoveTo(ahead)
			w.res.Steps++
			w.visit(cur)
		}

		// 5. Fingerprint the new state
		if !w.mark(cur) {
			w.res.Final = cur
			return w.res, &CycleError{State: cur, Iterations: w.res.Iterations}
		}

		// 6. Per-step hook
		if w.opts.OnStep != nil {
			if err := w.opts.OnStep(cur); err != nil {
				w.res.Final = cur
				return w.res, fmt.Errorf("patrol: OnStep hook at %s: %w", cur, err)
			}
		}
	}
}

// visit records g.Pos in the distinct-position path.
func (w *walker) visit(g Guard) {
	i, _ := w.grid.Index(g.Pos)
	if !w.res.visited[i] {
		w.res.visited[i] = true
		w.res.Path = append(w.res.Path, g.Pos)
	}
}

// mark records the fingerprint of g and reports whether it was new.
// It always reports true in CountCells mode.
func (w *walker) mark(g Guard) bool {
	if w.states == nil {
		return true
	}
	i, _ := w.grid.Index(g.Pos)
	k := i*4 + g.Dir.CardinalIndex()
	if w.states[k] {
		return false
	}
	w.states[k] = true
	return true
}
