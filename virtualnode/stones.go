package virtualnode

import "github.com/katalvlaran/unionfind/disjointset"

// axis keeps row and column nodes in separate namespaces: row 3 and column 3
// are different virtual nodes.
type axis struct {
	column bool
	value  int
}

// StoneComponents returns the number of connected components among the row
// and column nodes touched by stones, where a stone joins its row and column.
func StoneComponents(stones [][2]int) int {
	s := disjointset.NewKeyed[axis]()
	for _, st := range stones {
		s.Union(axis{value: st[0]}, axis{column: true, value: st[1]})
	}

	// Only touched rows and columns exist in s.
	return s.Count()
}

// RemoveStones returns the largest number of stones that can be removed, one
// at a time, where each removed stone must share a row or column with a stone
// still on the board. Duplicate coordinates are counted as separate stones.
//
// Steps:
//  1. Zero or one stone: nothing can be removed.
//  2. Treat every touched row and column as a virtual node and let each
//     stone union its row with its column (see StoneComponents).
//  3. Each component can be reduced to a single stone, so the answer is
//     len(stones) minus the number of components.
//
// Complexity: O(m·α(m)) expected time and O(m) memory for m stones.
func RemoveStones(stones [][2]int) int {
	// 1) Trivial boards.
	if len(stones) <= 1 {
		return 0
	}

	// 2) + 3) One stone survives per component.
	return len(stones) - StoneComponents(stones)
}
