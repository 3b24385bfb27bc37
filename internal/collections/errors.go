package collections

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates the requested collection does not exist.
var ErrNotFound = errors.New("collection not found")

// MapHTTPStatus maps collection domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
