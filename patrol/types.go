package patrol

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/labpatrol/compass"
)

// Sentinel errors for patrol simulation.
var (
	// ErrGridNil is returned when a nil grid is passed to Simulate.
	ErrGridNil = errors.New("patrol: grid is nil")

	// ErrStartOutOfBounds indicates the guard starts off the map.
	ErrStartOutOfBounds = errors.New("patrol: start position out of bounds")

	// ErrStartOnWall indicates the guard starts inside a wall.
	ErrStartOnWall = errors.New("patrol: start position is a wall")

	// ErrDiagonalHeading indicates a non-cardinal start heading.
	ErrDiagonalHeading = errors.New("patrol: heading must be cardinal")

	// ErrCycleDetected is matched by the *CycleError returned when a
	// DetectCycle run revisits a (position, heading) state.
	ErrCycleDetected = errors.New("patrol: cycle detected")

	// ErrStepBudget indicates a run exceeded 4×W×H iterations. In
	// CountCells mode this means the patrol never exits.
	ErrStepBudget = errors.New("patrol: iteration budget exceeded")
)

// Guard is a position plus a heading. Two guards are equal iff both
// fields are equal.
type Guard struct {
	Pos compass.Point
	Dir compass.Direction
}

// Ahead returns the cell directly in front of the guard.
func (g Guard) Ahead() compass.Point {
	return g.Pos.Step(g.Dir)
}

// TurnRight returns the guard rotated 90° clockwise in place.
func (g Guard) TurnRight() Guard {
	return Guard{Pos: g.Pos, Dir: g.Dir.CardinalRight()}
}

// MoveTo returns the guard relocated to p with the same heading.
func (g Guard) MoveTo(p compass.Point) Guard {
	return Guard{Pos: p, Dir: g.Dir}
}

// String formats the guard as "(x,y) North".
func (g Guard) String() string {
	return g.Pos.String() + " " + g.Dir.String()
}

// CycleError reports the first repeated state of a looping patrol.
type CycleError struct {
	// State is the guard state that was seen twice.
	State Guard
	// Iterations counts loop iterations up to and including the repeat.
	Iterations int
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("%s: state %s repeated after %d iterations", ErrCycleDetected, e.State, e.Iterations)
}

// Is makes errors.Is(err, ErrCycleDetected) hold for a *CycleError.
func (e *CycleError) Is(target error) bool {
	return target == ErrCycleDetected
}

// Mode selects what a simulation records.
type Mode int

const (
	// CountCells records distinct positions only.
	CountCells Mode = iota
	// DetectCycle also records (position, heading) fingerprints and stops
	// on the first repeat.
	DetectCycle
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case CountCells:
		return "count-cells"
	case DetectCycle:
		return "detect-cycle"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Option configures optional behavior of Simulate.
type Option func(*Options)

// Options holds configurable parameters for a simulation.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is polled every pollEvery iterations.
	Ctx context.Context

	// Mode selects CountCells (default) or DetectCycle.
	Mode Mode

	// OnStep, if non-nil, is invoked after every turn or move with the new
	// guard state. Returning an error aborts the simulation.
	OnStep func(g Guard) error
}

// DefaultOptions returns Options with a background context, CountCells
// mode and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Mode:   CountCells,
		OnStep: nil,
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode selects the recording mode.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithCycleDetection is shorthand for WithMode(DetectCycle).
func WithCycleDetection() Option {
	return WithMode(DetectCycle)
}

// WithOnStep installs fn as a per-iteration hook.
func WithOnStep(fn func(g Guard) error) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// Result captures the outcome of a simulation.
type Result struct {
	// Path lists distinct visited positions in first-visit order. It
	// always starts with the start position.
	Path []compass.Point

	// Steps counts moves into a new cell (revisits included).
	Steps int

	// Turns counts in-place rotations.
	Turns int

	// Iterations counts loop passes, including the final pass that found
	// the exit or the repeated state.
	Iterations int

	// Final is the last guard state inside the map.
	Final Guard

	visited []bool
	width   int
}

// Len returns the number of distinct positions visited.
func (r *Result) Len() int {
	return len(r.Path)
}

// Contains reports whether p was visited.
func (r *Result) Contains(p compass.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X >= r.width {
		return false
	}
	i := p.Y*r.width + p.X
	return i < len(r.visited) && r.visited[i]
}
