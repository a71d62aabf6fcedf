package redundant

import (
	"fmt"

	"github.com/katalvlaran/unionfind/disjointset"
)

// Directed returns the edge whose removal turns a rooted tree over nodes
// 1..len(edges) plus one extra parent→child edge back into a rooted tree.
// See the package documentation for how the two conflict shapes are told apart.
func Directed(edges [][2]int) (disjointset.Edge, error) {
	diag, err := DirectedReport(edges)
	if err != nil {
		return disjointset.Edge{}, err
	}

	return diag.Answer, nil
}

// DirectedReport runs the same analysis as Directed and returns the
// intermediate findings alongside the answer.
//
// Error Conditions:
//   - ErrEmptyInput             : len(edges) == 0.
//   - ErrNodeOutOfRange         : an endpoint lies outside 1..n.
//   - ErrMultipleRedundantEdges : a second node has two parents, or one node has three.
//   - ErrNoRedundantEdge        : no node has two parents and the cycle scan found no cycle.
//
// Steps:
//  1. Validate: non-empty input, every endpoint within 1..n.
//  2. Phase 1 (conflict scan): record the first parent edge of every child.
//     The first child seen with a second parent yields candA (the recorded
//     edge) and candB (the current edge). The scan runs to the end so that a
//     second defect is reported instead of answered.
//  3. Phase 2 (cycle scan): union every edge as undirected in input order,
//     skipping candB; stop at the first Union that returns false.
//  4. Pick the answer from (conflict, cycle):
//     (no, yes) → failing edge; (yes, yes) → candA; (yes, no) → candB;
//     (no, no)  → ErrNoRedundantEdge.
//
// Complexity: O(n·α(n)) time, O(n) memory.
func DirectedReport(edges [][2]int) (Diagnosis, error) {
	// 1) Validate the input shape before allocating anything.
	n := len(edges)
	if n == 0 {
		return Diagnosis{}, ErrEmptyInput
	}
	if err := checkRange(edges); err != nil {
		return Diagnosis{}, err
	}
	all := disjointset.EdgesFromPairs(edges)

	// 2) Phase 1: look for the single node with two parents.
	var diag Diagnosis
	conflict, err := findConflict(all, n)
	if err != nil {
		return Diagnosis{}, err
	}
	diag.Conflict = conflict

	// 3) Phase 2: undirected cycle scan with candB left out.
	//    Index 0 of the set is unused so labels map directly to elements.
	d := disjointset.New(n + 1)
	for _, e := range all {
		if diag.Conflict != nil && e.Index == diag.Conflict.Second.Index {
			continue // candB is skipped entirely
		}
		if !d.Union(e.From, e.To) {
			diag.Cycle = true
			diag.CycleEdge = e
			break
		}
	}

	// 4) Resolve the answer table.
	switch {
	case diag.Conflict == nil && diag.Cycle:
		// Pure cycle through the root: drop the edge that closed it.
		diag.Answer = diag.CycleEdge
	case diag.Conflict != nil && diag.Cycle:
		// Without candB the tree is still cyclic, so candA is on the cycle.
		diag.Answer = diag.Conflict.First
	case diag.Conflict != nil:
		// Without candB the tree is valid; candB is the only defect.
		diag.Answer = diag.Conflict.Second
	default:
		return diag, ErrNoRedundantEdge
	}

	return diag, nil
}

// findConflict performs phase 1. It returns the pair of parent edges of the
// node that has two parents, or nil when every node has at most one.
// A second node with two parents, or a third parent for the same node, is
// more than one extra edge and yields ErrMultipleRedundantEdges.
func findConflict(edges []disjointset.Edge, n int) (*Conflict, error) {
	first := make([]int, n+1) // child -> index of its first parent edge, -1 if none
	for i := range first {
		first[i] = -1
	}

	var conflict *Conflict
	for _, e := range edges {
		prev := first[e.To]
		if prev < 0 {
			first[e.To] = e.Index
			continue
		}
		if conflict != nil {
			return nil, fmt.Errorf("node %d has parent edge %v after conflict %v/%v: %w",
				e.To, e, conflict.First, conflict.Second, ErrMultipleRedundantEdges)
		}
		conflict = &Conflict{First: edges[prev], Second: e}
	}

	return conflict, nil
}
