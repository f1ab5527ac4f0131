package labpatrol

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/labpatrol/lab"
	"github.com/katalvlaran/labpatrol/obstruction"
)

// Answer holds the two results for one map.
type Answer struct {
	// Visited is the number of distinct cells the guard visits before
	// leaving the unobstructed map.
	Visited int
	// Obstructions is the number of single-wall placements that trap the
	// guard in a loop.
	Obstructions int
}

// Solve parses a map from r and answers both questions. opts are passed
// to obstruction.Search; ctx overrides any WithContext among them.
func Solve(ctx context.Context, r io.Reader, opts ...obstruction.Option) (Answer, error) {
	l, err := lab.Parse(r)
	if err != nil {
		return Answer{}, err
	}
	opts = append(opts, obstruction.WithContext(ctx))
	res, err := obstruction.Search(l.Grid, l.Guard, opts...)
	if err != nil {
		return Answer{}, fmt.Errorf("labpatrol: %w", err)
	}

	return Answer{Visited: res.Baseline.Len(), Obstructions: res.Count}, nil
}
