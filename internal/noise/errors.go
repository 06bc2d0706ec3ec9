package noise

import "errors"

var (
	ErrInvalidParams  = errors.New("invalid noise parameters")
	ErrInvalidField   = errors.New("invalid field dimensions")
	ErrUnknownPalette = errors.New("unknown palette")
)
