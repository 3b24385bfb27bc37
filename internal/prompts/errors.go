package prompts

import (
	"errors"
	"net/http"
)

// Domain errors for prompt operations.
var (
	ErrNotFound           = errors.New("prompt not found")
	ErrCollectionNotFound = errors.New("collection not found")
)

// MapHTTPStatus maps prompt domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrCollectionNotFound) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
