package virtualnode

import (
	"fmt"

	"github.com/katalvlaran/unionfind/disjointset"
)

// Quadrant offsets of the four virtual nodes inside one cell.
const (
	top = iota
	right
	bottom
	left
	quadrants
)

// RegionsBySlashes returns how many regions the slashes in grid carve out of
// the n×n square. Each grid[r][c] byte is ' ', '/' or '\'.
//
// Every cell is split into four triangular quadrants (top, right, bottom,
// left) that become virtual nodes of one dense DisjointSet; a region is a
// set of connected quadrants.
//
// Error Conditions:
//   - ErrEmptyGrid  : len(grid) == 0.
//   - ErrNonSquare  : some row length differs from len(grid).
//   - ErrInvalidCell: a byte other than ' ', '/' or '\'.
//
// Steps:
//  1. Validate the grid shape.
//  2. Allocate 4·n² virtual nodes, numbered (r·n+c)·4+q.
//  3. Inside each cell:
//     ' ' joins all four quadrants,
//     '/' joins top with left and right with bottom,
//     '\' joins top with right and bottom with left.
//  4. Across cells: bottom of (r,c) meets top of (r+1,c), and right of (r,c)
//     meets left of (r,c+1).
//  5. The region count is the number of roots.
//
// Complexity: O(n²·α(n²)) time, O(n²) memory.
func RegionsBySlashes(grid []string) (int, error) {
	// 1) Shape checks.
	n := len(grid)
	if n == 0 {
		return 0, ErrEmptyGrid
	}
	for r, row := range grid {
		if len(row) != n {
			return 0, fmt.Errorf("row %d has length %d, want %d: %w", r, len(row), n, ErrNonSquare)
		}
	}

	// 2) Virtual node numbering.
	id := func(r, c, q int) int { return (r*n+c)*quadrants + q }
	d := disjointset.New(n * n * quadrants)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			t, ri, b, l := id(r, c, top), id(r, c, right), id(r, c, bottom), id(r, c, left)
			// 3) Intra-cell unions.
			switch grid[r][c] {
			case ' ':
				d.Union(t, ri)
				d.Union(ri, b)
				d.Union(b, l)
			case '/':
				d.Union(t, l)
				d.Union(ri, b)
			case '\\':
				d.Union(t, ri)
				d.Union(b, l)
			default:
				return 0, fmt.Errorf("cell (%d,%d) %q: %w", r, c, grid[r][c], ErrInvalidCell)
			}
			// 4) Facing quadrants of neighbouring cells share a border.
			if r+1 < n {
				d.Union(b, id(r+1, c, top))
			}
			if c+1 < n {
				d.Union(ri, id(r, c+1, left))
			}
		}
	}

	// 5) One root per region.
	return len(d.Roots()), nil
}
