package connectivity

import "errors"

var (
	// ErrNodeOutOfRange indicates an edge endpoint outside 0..n-1.
	ErrNodeOutOfRange = errors.New("connectivity: node out of range")

	// ErrNotSquare indicates an adjacency matrix whose rows are not all of length n.
	ErrNotSquare = errors.New("connectivity: adjacency matrix must be square")

	// ErrNotEnoughCables indicates fewer than n-1 cables, so no rewiring can
	// connect every machine.
	ErrNotEnoughCables = errors.New("connectivity: not enough cables to connect network")

	// ErrMalformedEquation indicates an equation that is not "x==y" or "x!=y"
	// over lowercase letters.
	ErrMalformedEquation = errors.New("connectivity: malformed equation")
)

// Alphabet is the number of symbols EquationsPossible reasons about (a..z).
const Alphabet = 26
