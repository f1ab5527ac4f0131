// Package patrol simulates a guard walking a grid.Grid.
//
// The guard walks straight ahead. When the cell ahead is a wall it turns
// 90° clockwise in place; when the cell ahead is off the map it leaves and
// the simulation ends.
//
// Key features:
//   - Simulate(g, start, opts...): run one patrol to completion
//   - CountCells mode: collect the distinct positions visited
//   - DetectCycle mode: also fingerprint every (position, heading) state and
//     stop with ErrCycleDetected on the first repeat
//   - Hooks: OnStep is called after every turn or move; an error aborts
//   - Cancellation via context.Context
//
// Termination:
//
// A guard state is a (position, heading) pair, so a W×H grid has at most
// 4×W×H of them. In DetectCycle mode each iteration adds a new fingerprint,
// so a run ends within that many iterations. CountCells mode enforces the
// same budget and fails with ErrStepBudget when a patrol never leaves.
//
// Complexity:
//
//   - Time:   O(W×H) iterations per run.
//   - Memory: O(W×H) bits for the visit bitsets plus the visited path.
//
// Errors:
//
//   - ErrGridNil            if g is nil.
//   - ErrStartOutOfBounds   if the start position is off the map.
//   - ErrStartOnWall        if the start position is a wall.
//   - ErrDiagonalHeading    if the start heading is not cardinal.
//   - ErrCycleDetected      (as *CycleError) in DetectCycle mode.
//   - ErrStepBudget         in CountCells mode when the patrol loops.
//   - context errors and any error returned by OnStep.
package patrol
