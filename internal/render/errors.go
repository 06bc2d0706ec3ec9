package render

import (
	"context"
	"errors"
	"net/http"
)

// ErrInvalidRequest wraps every validation failure of a render request.
var ErrInvalidRequest = errors.New("invalid render request")

// MapHTTPStatus maps render errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
