// Package disjointset provides the union-find engine shared by every solver in
// this module: a dense, slice-backed DisjointSet over 0..n-1 and a sparse Keyed
// set that assigns dense IDs to arbitrary comparable keys on first sight.
//
// What
//
//   - Find(x) returns the canonical representative (root) of x's set.
//   - Union(a, b) merges two sets and reports whether a merge happened.
//     A false return means a and b were already joined; the redundant-edge
//     detectors rely on exactly this signal.
//   - Connected(a, b) is shorthand for Find(a) == Find(b).
//
// Heuristics
//
//   - Path halving: Find walks to the root in an explicit loop and points
//     every other visited node at its grandparent. There is no recursion, so
//     adversarially long chains cannot exhaust the call stack.
//   - Union by rank: the root of lower rank is attached under the root of
//     higher rank. On a rank tie the root of the second argument is attached
//     under the root of the first, and the first root's rank grows by one.
//
// Together both heuristics give amortized O(α(n)) per operation, where α is
// the inverse Ackermann function.
//
// Dense vs. sparse
//
//	Use New(n) when the universe is known and contiguous (grid cells, string
//	offsets, labelled nodes). Use NewKeyed[K]() when keys are discovered while
//	scanning input (emails, row/column values): Keyed maps each key to a dense
//	ID and grows an internal DisjointSet, so Find/Union stay slice-backed.
//
// Concurrency
//
//	Neither type is safe for concurrent mutation. Give each goroutine its own
//	instance or guard a shared one with a sync.Mutex.
package disjointset
