package obstruction

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/katalvlaran/labpatrol/compass"
	"github.com/katalvlaran/labpatrol/patrol"
)

// Sentinel errors for obstruction search.
var (
	// ErrGridNil is returned if a nil grid is passed.
	ErrGridNil = errors.New("obstruction: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("obstruction: invalid option supplied")
)

// Option configures Search via functional arguments. An invalid Option
// is recorded and surfaced as ErrOptionViolation when Search runs.
type Option func(*Options)

// Options holds parameters for a search.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Workers bounds how many probes run at once.
	Workers int

	// Exhaustive probes every open cell instead of the visited ones.
	Exhaustive bool

	// Logger receives debug and summary lines; defaults to a no-op logger.
	Logger *zap.Logger

	// OnLoop, if non-nil, is called once per loop-inducing cell after all
	// probes finished, in row-major order.
	OnLoop func(p compass.Point)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, one worker
// per GOMAXPROCS, visited-cell candidates and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Workers:    runtime.GOMAXPROCS(0),
		Exhaustive: false,
		Logger:     zap.NewNop(),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds parallel probes.
//
//	n > 0:  at most n probes in flight
//	n == 0: keep the default (GOMAXPROCS)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n > 0:
			o.Workers = n
		}
	}
}

// WithExhaustive probes every open cell except the start.
func WithExhaustive() Option {
	return func(o *Options) {
		o.Exhaustive = true
	}
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnLoop registers a callback for each loop-inducing cell.
func WithOnLoop(fn func(p compass.Point)) Option {
	return func(o *Options) {
		o.OnLoop = fn
	}
}

// Result holds the outcome of a search.
type Result struct {
	// Count is the number of loop-inducing cells.
	Count int

	// Candidates is the number of cells probed.
	Candidates int

	// Loops lists the loop-inducing cells in row-major order.
	Loops []compass.Point

	// Baseline is the unobstructed patrol; Baseline.Len() answers
	// "how many cells does the guard visit".
	Baseline *patrol.Result
}
