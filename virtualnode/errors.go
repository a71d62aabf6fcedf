package virtualnode

import "errors"

var (
	// ErrEmptyGrid indicates the input grid has no rows.
	ErrEmptyGrid = errors.New("virtualnode: input grid must have at least one row")
	// ErrNonSquare indicates a row whose length differs from the number of rows.
	ErrNonSquare = errors.New("virtualnode: grid must be n×n")
	// ErrInvalidCell indicates a character other than ' ', '/' or '\'.
	ErrInvalidCell = errors.New("virtualnode: cell must be ' ', '/' or '\\'")
)
