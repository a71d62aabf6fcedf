// Package redundant finds the single extra edge in a "tree plus one edge"
// graph, for both undirected trees and rooted directed trees.
//
// Undirected
//
//	Undirected(edges) takes n edges over nodes 1..n that form a tree plus one
//	extra edge, so exactly one cycle exists. Edges are unioned in input order;
//	the edge whose Union fails closes the cycle and is the last edge, in input
//	order, that can be removed to leave a tree.
//
// Directed
//
//	Directed(edges) takes n edges parent→child over nodes 1..n that form a
//	rooted tree plus one extra edge. The extra edge produces one of three
//	shapes:
//
//	  - a node with two parents and no cycle,
//	  - a node with two parents on a cycle,
//	  - a cycle through the root and no node with two parents.
//
//	Phase 1 records, per child, the first parent edge seen. The first edge
//	whose child already has a parent yields candA (the recorded edge) and
//	candB (the current one). Only one node may ever have two parents; the scan
//	still runs to the end so a second conflict is reported as an error.
//
//	Phase 2 unions every edge as undirected, skipping candB. The answer is:
//
//	  conflict | cycle | answer
//	  ---------+-------+------------------------------
//	  no       | yes   | the edge whose Union failed
//	  yes      | yes   | candA
//	  yes      | no    | candB
//	  no       | no    | ErrNoRedundantEdge
//
//	With candB removed, a remaining cycle can only be broken by dropping candA;
//	otherwise candB alone is the defect.
//
// Preconditions
//
//	Both detectors assume exactly one extra edge. Input with no defect yields
//	ErrNoRedundantEdge. Undirected input with a second cycle-closing edge, and
//	directed input where a second node has two parents or one node has three,
//	yield ErrMultipleRedundantEdges. Other multi-defect shapes (for example a
//	second extra edge that adds a cycle without a new parent conflict) are
//	outside the contract and their result is unspecified.
//
// Complexity: O(n·α(n)) time, O(n) memory for both detectors.
package redundant
