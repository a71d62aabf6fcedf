// Package problem describes union-find problem instances as data, decodes
// them from JSON, TOML or YAML files and dispatches them to the solver
// packages.
//
// A problem file names its Kind and fills the fields that kind reads:
//
//	kind                 fields
//	components           n, edges
//	provinces            matrix
//	network              n, edges
//	equations            equations
//	valid-tree           n, edges
//	redundant            edges
//	redundant-directed   edges
//	accounts             accounts   (each row: name, then emails)
//	swaps                s, pairs
//	slashes              grid
//	stones               stones
package problem
