// Package connectivity counts connected components with a union-find and
// builds the usual queries on top of that count.
//
// What
//
//   - CountComponents(n, edges): distinct sets over the universe 0..n-1 after
//     unioning every edge. Isolated elements count as their own component.
//   - CountProvinces(matrix): the same count over a square 0/1 adjacency matrix.
//   - MinCablesToConnect(n, connections): the fewest cable moves that connect
//     n machines, or -1 with ErrNotEnoughCables when fewer than n-1 cables exist.
//   - EquationsPossible(equations): whether "x==y" / "x!=y" constraints over
//     the letters a..z can all hold at once.
//   - ValidTree(n, edges): whether n nodes and the edges form one tree.
//
// Complexity
//
//   - Time:   O(n + m·α(n)) for m edges; CountProvinces is O(n²·α(n)).
//   - Memory: O(n).
//
// Errors
//
//   - ErrNodeOutOfRange: n < 0, or an edge endpoint lies outside 0..n-1.
//   - ErrNotSquare: the adjacency matrix is not n×n.
//   - ErrNotEnoughCables: fewer than n-1 cables; checked before any union.
//   - ErrMalformedEquation: an equation is not of the form "a==b" or "a!=b".
package connectivity
