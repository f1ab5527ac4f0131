// Package obstruction counts the cells where one extra wall would trap a
// patrolling guard in a loop forever.
//
// What:
//
//   - Search(g, start, opts...) walks the unobstructed patrol once, then
//     re-runs it in cycle-detection mode once per candidate cell with a
//     wall dropped there (g.WithWallAt), counting the runs that loop.
//   - Candidates default to the cells the unobstructed patrol visits, minus
//     the start. A wall the guard never reaches cannot change its route,
//     so only those cells can matter. WithExhaustive tries every open cell
//     instead; the answer is the same, only slower.
//   - Candidates are independent, so they run on a bounded errgroup.
//
// Complexity:
//
//   - Time:   O(C × W×H) for C candidates (C ≤ W×H), spread over workers.
//   - Memory: O(workers × W×H) for the in-flight visit bitsets.
//
// Options:
//
//   - WithContext(ctx)   cancels outstanding probes.
//   - WithWorkers(n)     bounds parallel probes (default GOMAXPROCS).
//   - WithExhaustive()   probes every open cell.
//   - WithLogger(l)      zap logger for per-loop debug lines and a summary.
//   - WithOnLoop(fn)     called once per loop-inducing cell, row-major.
//
// Errors:
//
//   - ErrGridNil          if g is nil.
//   - ErrOptionViolation  for a negative worker count.
//   - the baseline patrol's error (bad start, or a patrol that never exits).
//   - context errors.
package obstruction
