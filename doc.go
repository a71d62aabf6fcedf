// Package unionfind is a small family of solvers built on one disjoint-set
// (union-find) engine.
//
// Packages:
//
//	disjointset/  — dense DisjointSet over 0..n-1 and sparse Keyed[K] over arbitrary keys
//	connectivity/ — component counting: provinces, network repair, equation satisfiability, tree check
//	redundant/    — the extra edge in an undirected tree or a rooted directed tree
//	equivalence/  — classes over keys discovered on the fly: account merging, swap grouping
//	virtualnode/  — grid quadrants and row/column nodes reduced to component counts
//
// Every solver is a pure function over in-memory input. A DisjointSet is
// created per call and never shared, so solvers are safe to call from many
// goroutines at once; the DisjointSet itself is not.
//
// The dsu command (cmd/dsu) solves problem files in JSON, TOML or YAML.
package unionfind
