package redundant

import (
	"fmt"

	"github.com/katalvlaran/unionfind/disjointset"
)

// Undirected returns the edge that closes the single cycle in a tree over
// nodes 1..len(edges) plus one extra edge.
//
// Error Conditions:
//   - ErrEmptyInput             : no edges.
//   - ErrNodeOutOfRange         : an endpoint outside 1..n.
//   - ErrNoRedundantEdge        : every union succeeded.
//   - ErrMultipleRedundantEdges : a second union failed.
//
// Steps:
//  1. Validate the edge count and every endpoint.
//  2. Union every edge in input order, collecting those whose Union fails.
//  3. Exactly one failure is the answer; zero or several break the contract.
//
// Because edges are processed strictly in input order, the failing edge is
// also the last edge in input order whose removal leaves a tree.
//
// Complexity: O(n·α(n)) time, O(n) memory.
func Undirected(edges [][2]int) (disjointset.Edge, error) {
	// 1) Validate.
	n := len(edges)
	if n == 0 {
		return disjointset.Edge{}, ErrEmptyInput
	}
	if err := checkRange(edges); err != nil {
		return disjointset.Edge{}, err
	}

	// 2) Replay edges; index 0 is unused so labels map directly to elements.
	d := disjointset.New(n + 1)
	red := disjointset.UnionEdges(d, disjointset.EdgesFromPairs(edges))

	// 3) Enforce the single-defect precondition.
	switch len(red) {
	case 0:
		return disjointset.Edge{}, ErrNoRedundantEdge
	case 1:
		return red[0], nil
	default:
		return disjointset.Edge{}, fmt.Errorf("edges %v and %v both close a cycle: %w", red[0], red[1], ErrMultipleRedundantEdges)
	}
}

// checkRange ensures every endpoint lies in 1..len(edges).
func checkRange(edges [][2]int) error {
	n := len(edges)
	for i, e := range edges {
		if e[0] < 1 || e[0] > n || e[1] < 1 || e[1] > n {
			return fmt.Errorf("edge %d %v with n=%d: %w", i, e, n, ErrNodeOutOfRange)
		}
	}

	return nil
}
