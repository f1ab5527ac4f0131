// Package labpatrol simulates a guard patrolling a walled lab map and
// finds every spot where one extra obstruction would trap the guard in a
// loop forever.
//
// What is labpatrol?
//
//	A small, pure-Go toolkit that brings together:
//		• compass/     — Point and 8-way Direction value types
//		• grid/        — immutable Open/Wall map with copy-on-write walls
//		• lab/         — puzzle text parsing and trail rendering
//		• patrol/      — the walk-until-blocked-then-turn-right state machine
//		• obstruction/ — parallel search for loop-inducing wall placements
//
// The patrol rule: the guard walks straight ahead; if the cell ahead is a
// wall it turns 90° clockwise in place; if the cell ahead is off the map
// it leaves.
//
// Quick ASCII example:
//
//	....       ....
//	.#..  -->  .#..
//	.^..       .^XX
//	....       ....
//
// the guard turns right at the wall and visits 3 cells before leaving.
//
// Solve answers both questions for one map in a single call:
//
//	ans, err := labpatrol.Solve(ctx, file)
//	fmt.Println(ans.Visited, ans.Obstructions)
package labpatrol
