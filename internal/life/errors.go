package life

import "errors"

var (
	ErrInvalidSize        = errors.New("invalid board size")
	ErrInvalidDensity     = errors.New("density must be between 0 and 1")
	ErrInvalidPattern     = errors.New("invalid pattern")
	ErrInvalidGenerations = errors.New("generations must not be negative")
	ErrInvalidCellSize    = errors.New("invalid cell size")
)
