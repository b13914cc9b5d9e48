package grid

import "errors"

var (
	// ErrInvalidGrid reports grid text whose lines do not all have the same
	// length.
	ErrInvalidGrid = errors.New("grid: lines have different lengths")

	// ErrNonASCII reports a byte grid holding values outside the ASCII range.
	ErrNonASCII = errors.New("grid: contains non-ASCII bytes")

	// ErrOutOfBounds reports coordinates outside the grid's dimensions.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
)
