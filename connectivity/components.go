package connectivity

import (
	"fmt"

	"github.com/katalvlaran/unionfind/disjointset"
)

// CountComponents unions every edge over the universe 0..n-1 and returns the
// number of distinct roots over the universe (not over the edges), so
// isolated elements count as components of their own.
//
// Error Conditions:
//   - ErrNodeOutOfRange: n < 0, or an endpoint outside 0..n-1.
func CountComponents(n int, edges [][2]int) (int, error) {
	d, err := build(n, edges)
	if err != nil {
		return 0, err
	}

	return len(d.Roots()), nil
}

// CountProvinces returns the number of provinces in a square adjacency
// matrix, where matrix[i][j] == 1 marks i and j as directly connected.
// Any non-zero entry counts as a connection.
//
// Error Conditions:
//   - ErrNotSquare: some row length differs from len(matrix).
//
// Complexity: O(n²·α(n)) time, O(n) memory.
func CountProvinces(matrix [][]int) (int, error) {
	// 1) Validate the shape.
	n := len(matrix)
	for i, row := range matrix {
		if len(row) != n {
			return 0, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(row), n, ErrNotSquare)
		}
	}

	// 2) Union every connected pair. Either triangle may carry the mark,
	//    so both matrix[i][j] and matrix[j][i] are consulted.
	d := disjointset.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if matrix[i][j] != 0 || matrix[j][i] != 0 {
				d.Union(i, j)
			}
		}
	}

	// 3) One root per province.
	return len(d.Roots()), nil
}

// MinCablesToConnect returns the minimum number of cables that must be moved
// so that all n machines are connected. Each connection is one cable.
//
// Error Conditions:
//   - ErrNodeOutOfRange  : n < 0, or an endpoint outside 0..n-1. Returns -1.
//   - ErrNotEnoughCables : len(connections) < n-1. Returns -1 without any union work.
//
// Steps:
//  1. Reject a negative machine count.
//  2. Pre-check: n machines need at least n-1 cables. With fewer, no
//     rewiring can succeed, so fail before building a union-find.
//  3. Union every connection and count components over 0..n-1.
//  4. Every component beyond the first needs exactly one relocated cable
//     (redundant cables exist because there are at least n-1 of them),
//     so the answer is components-1.
//
// Complexity: O(n + m·α(n)) time, O(n) memory for m connections.
func MinCablesToConnect(n int, connections [][2]int) (int, error) {
	// 1) Negative universes have no meaning.
	if n < 0 {
		return -1, fmt.Errorf("n=%d: %w", n, ErrNodeOutOfRange)
	}
	// 2) Cheap structural impossibility check.
	if len(connections) < n-1 {
		return -1, ErrNotEnoughCables
	}
	// 3) Build the partition.
	d, err := build(n, connections)
	if err != nil {
		return -1, err
	}
	if n == 0 {
		return 0, nil
	}

	// 4) Components minus one.
	return len(d.Roots()) - 1, nil
}

// ValidTree reports whether the undirected graph on n nodes (0..n-1) with the
// given edges is a single tree: exactly n-1 edges and no cycle.
// n-1 acyclic edges over n nodes always connect them.
func ValidTree(n int, edges [][2]int) (bool, error) {
	if n <= 0 || len(edges) != n-1 {
		return false, nil
	}
	d := disjointset.New(n)
	for i, e := range edges {
		if err := checkEdge(n, i, e); err != nil {
			return false, err
		}
		if !d.Union(e[0], e[1]) {
			return false, nil // cycle
		}
	}

	return true, nil
}

// build validates the edges against 0..n-1 and returns the resulting partition.
func build(n int, edges [][2]int) (*disjointset.DisjointSet, error) {
	if n < 0 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrNodeOutOfRange)
	}
	d := disjointset.New(n)
	for i, e := range edges {
		if err := checkEdge(n, i, e); err != nil {
			return nil, err
		}
		d.Union(e[0], e[1])
	}

	return d, nil
}

func checkEdge(n, i int, e [2]int) error {
	if e[0] < 0 || e[0] >= n || e[1] < 0 || e[1] >= n {
		return fmt.Errorf("edge %d %v with n=%d: %w", i, e, n, ErrNodeOutOfRange)
	}

	return nil
}
