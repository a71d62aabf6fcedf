package disjointset

import "fmt"

// Edge is an ordered pair (From, To) together with its position in the
// original input sequence. Index drives "last occurrence" tie-breaking in the
// redundant-edge detectors.
type Edge struct {
	From  int
	To    int
	Index int
}

// Pair returns the endpoints as a two-element array, the shape most callers
// receive their input in.
func (e Edge) Pair() [2]int {
	return [2]int{e.From, e.To}
}

// String renders the edge as "[from,to]".
func (e Edge) String() string {
	return fmt.Sprintf("[%d,%d]", e.From, e.To)
}

// EdgesFromPairs converts raw endpoint pairs into Edges, stamping each with its
// input position.
func EdgesFromPairs(pairs [][2]int) []Edge {
	edges := make([]Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = Edge{From: p[0], To: p[1], Index: i}
	}

	return edges
}
