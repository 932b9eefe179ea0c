package grid

import "errors"

var (
	// ErrInvalidSize reports a grid dimension outside the supported set.
	ErrInvalidSize = errors.New("grid: unsupported grid size")
	// ErrOutOfBounds reports cell coordinates outside the current grid.
	ErrOutOfBounds = errors.New("grid: cell coordinates out of bounds")
	// ErrEmptySource reports a missing or zero-area quantization source.
	ErrEmptySource = errors.New("grid: source image has no pixels")
	// ErrUnknownColor reports a cell value that is not a palette index.
	ErrUnknownColor = errors.New("grid: color index not in palette")
)
