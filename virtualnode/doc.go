// Package virtualnode reduces 2D adjacency problems to plain connectivity by
// feeding a union-find synthetic elements ("virtual nodes") that stand for
// derived structure rather than input entities.
//
// What:
//
//   - RegionsBySlashes: each cell of an n×n grid of ' ', '/' and '\' is split
//     into four quadrant nodes (top, right, bottom, left). Quadrants are joined
//     inside a cell according to its character and across cell borders to
//     their facing neighbour; the number of regions is the number of distinct
//     roots over all 4·n² quadrants.
//   - RemoveStones: every distinct row and every distinct column becomes a
//     node. A stone at (r, c) joins row r with column c. Within one component
//     stones can be removed until exactly one remains, so the answer is the
//     stone count minus the number of components among touched nodes.
//
// Quadrant layout inside a cell:
//
//	 ___________
//	|\    0    /|
//	|  \     /  |
//	| 3   X   1 |
//	|  /     \  |
//	|/    2    \|
//	 ‾‾‾‾‾‾‾‾‾‾‾
//
// Complexity:
//
//   - RegionsBySlashes: O(n²·α(n²)) time, O(n²) memory.
//   - RemoveStones:     O(s·α(s)) time, O(s) memory for s stones.
//
// Errors:
//
//   - ErrEmptyGrid: the grid has no rows.
//   - ErrNonSquare: a row length differs from the row count.
//   - ErrInvalidCell: a cell is not ' ', '/' or '\'.
package virtualnode
