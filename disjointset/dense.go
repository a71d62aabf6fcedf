package disjointset

import "fmt"

// DisjointSet is a union-find structure over the dense universe 0..Len()-1.
// The zero value is an empty set; elements are added with New or Add.
type DisjointSet struct {
	parent []int // parent[x] == x marks a root
	rank   []int // upper bound on subtree height; meaningful for roots only
	count  int   // number of disjoint sets
}

// New returns a DisjointSet of n singletons {0}, {1}, ..., {n-1}.
// A negative n is treated as zero.
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Add appends a fresh singleton and returns its element ID (the previous Len()).
func (d *DisjointSet) Add() int {
	id := len(d.parent)
	d.parent = append(d.parent, id)
	d.rank = append(d.rank, 0)
	d.count++

	return id
}

// Len reports the size of the universe.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count reports the number of disjoint sets currently in the structure.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the root of x's set.
// Postcondition: Find(Find(x)) == Find(x).
//
// Steps:
//  1. Bounds-check x; an element outside 0..Len()-1 is a programming error and panics.
//  2. Walk parent pointers in an explicit loop until parent[x] == x.
//  3. On every step point x at its grandparent (path halving), so later
//     lookups along the same chain are roughly twice as short.
//
// Complexity: amortized O(α(n)) when combined with union by rank.
func (d *DisjointSet) Find(x int) int {
	// 1) Reject indices outside the universe.
	d.check(x)
	// 2) Iterate instead of recursing: chains never grow the call stack.
	for d.parent[x] != x {
		// 3) Path halving: skip one level and continue from the grandparent.
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets holding a and b.
//
// Returns:
//   - false if a and b already share a root; the structure is left untouched.
//     The redundant-edge detectors treat this as "edge closes a cycle".
//   - true after linking the two roots.
//
// Steps:
//  1. Resolve both roots via Find.
//  2. If they coincide, report false.
//  3. Union by rank: attach the lower-rank root under the higher-rank one.
//  4. On a rank tie attach b's root under a's root and increment a's rank.
//  5. Decrement the set count.
//
// Complexity: amortized O(α(n)).
func (d *DisjointSet) Union(a, b int) bool {
	// 1) Roots of both elements.
	ra, rb := d.Find(a), d.Find(b)
	// 2) Same set: nothing to merge.
	if ra == rb {
		return false
	}
	switch {
	case d.rank[ra] < d.rank[rb]:
		// 3) a's tree is shallower; hang it under b's root.
		d.parent[ra] = rb
	case d.rank[ra] > d.rank[rb]:
		d.parent[rb] = ra
	default:
		// 4) Tie: the first argument's root survives and grows one level.
		d.parent[rb] = ra
		d.rank[ra]++
	}
	// 5) Two sets became one.
	d.count--

	return true
}

// Connected reports whether a and b belong to the same set.
func (d *DisjointSet) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}

// Roots returns the distinct roots over the whole universe in ascending
// element order of first appearance.
func (d *DisjointSet) Roots() []int {
	seen := make(map[int]struct{}, d.count)
	roots := make([]int, 0, d.count)
	for x := range d.parent {
		r := d.Find(x)
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		roots = append(roots, r)
	}

	return roots
}

// Sets returns the partition as slices of elements. Each set is in ascending
// order, and sets are ordered by their smallest element.
func (d *DisjointSet) Sets() [][]int {
	index := make(map[int]int, d.count) // root -> position in out
	out := make([][]int, 0, d.count)
	for x := range d.parent {
		r := d.Find(x)
		i, ok := index[r]
		if !ok {
			i = len(out)
			index[r] = i
			out = append(out, nil)
		}
		out[i] = append(out[i], x)
	}

	return out
}

func (d *DisjointSet) check(x int) {
	if x < 0 || x >= len(d.parent) {
		panic(fmt.Sprintf("disjointset: element %d out of range [0,%d)", x, len(d.parent)))
	}
}

// UnionEdges unions every edge in input order and returns, in the same order,
// the edges whose Union call failed because both endpoints were already
// connected.
func UnionEdges(d *DisjointSet, edges []Edge) []Edge {
	var redundant []Edge
	for _, e := range edges {
		if !d.Union(e.From, e.To) {
			redundant = append(redundant, e)
		}
	}

	return redundant
}
