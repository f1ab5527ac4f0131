// Package lab reads the puzzle's map text into a grid.Grid and the
// guard's starting patrol.Guard, and draws visited trails back as text.
//
// Input alphabet:
//
//	'.'            open cell
//	'#'            wall
//	'^' '>' 'v' '<' the single guard start (open once consumed)
//
// Lines may end in "\n" or "\r\n"; trailing blank lines are ignored.
package lab
