// Package handlers provides JSON response helpers shared by domain handlers.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/promptlab/pkg/validation"
)

// Detail is the body of every non-validation error response.
type Detail struct {
	Detail string `json:"detail"`
}

// ValidationDetail is the body of a 422 response.
type ValidationDetail struct {
	Detail validation.Errors `json:"detail"`
}

// RespondJSON writes data as JSON with the given status.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError writes {"detail": err.Error()} with the given status.
// Validation errors are always rendered as a 422 field list. Server errors
// are logged and their detail is withheld from the client.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		RespondJSON(w, http.StatusUnprocessableEntity, ValidationDetail{Detail: verrs})
		return
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
		RespondJSON(w, status, Detail{Detail: http.StatusText(status)})
		return
	}

	RespondJSON(w, status, Detail{Detail: err.Error()})
}

// RespondDetail writes {"detail": msg} with the given status.
func RespondDetail(w http.ResponseWriter, status int, msg string) {
	RespondJSON(w, status, Detail{Detail: msg})
}
