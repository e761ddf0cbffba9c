package matrix

import "errors"

var (
	// ErrShapeMismatch reports matrices whose dimensions or column
	// layouts are incompatible for the requested operation.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrAlignment reports identifier lookups that the matrix cannot
	// satisfy, such as a missing row, column, weight, or cluster key.
	ErrAlignment = errors.New("matrix: identifier alignment")
)
