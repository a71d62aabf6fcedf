package redundant

import (
	"errors"

	"github.com/katalvlaran/unionfind/disjointset"
)

var (
	// ErrEmptyInput indicates an empty edge list.
	ErrEmptyInput = errors.New("redundant: no edges")

	// ErrNodeOutOfRange indicates an endpoint outside 1..n, where n is the edge count.
	ErrNodeOutOfRange = errors.New("redundant: node out of range")

	// ErrNoRedundantEdge indicates the input contained no extra edge: every
	// union succeeded and, for directed input, no node had two parents.
	ErrNoRedundantEdge = errors.New("redundant: input has no redundant edge")

	// ErrMultipleRedundantEdges indicates more than one extra edge: a second
	// cycle-closing edge in undirected input, or a second two-parent node (or a
	// third parent) in directed input.
	ErrMultipleRedundantEdges = errors.New("redundant: input has more than one redundant edge")
)

// Conflict records the two incoming edges of the node that has two parents.
type Conflict struct {
	// First is the first parent edge seen for the node (candA).
	First disjointset.Edge
	// Second is the edge that gave the node its second parent (candB).
	Second disjointset.Edge
}

// Diagnosis explains how Directed reached its answer.
type Diagnosis struct {
	// Conflict is non-nil when some node has two parents.
	Conflict *Conflict
	// Cycle is true when the cycle scan (skipping Conflict.Second) failed a union.
	Cycle bool
	// CycleEdge is the edge whose union failed; valid only when Cycle is true.
	CycleEdge disjointset.Edge
	// Answer is the edge to remove.
	Answer disjointset.Edge
}
