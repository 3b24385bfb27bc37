package validation

import (
	"fmt"
	"strings"
)

// Field error types reported in the loc/msg/type entries.
const (
	TypeMissing         = "missing"
	TypeTooShort        = "string_too_short"
	TypeTooLong         = "string_too_long"
	TypeString          = "string_type"
	TypeExtraForbidden  = "extra_forbidden"
	TypeJSONInvalid     = "json_invalid"
	TypeValueError      = "value_error"
	TypeContentTooShort = "content_too_short"
)

// FieldError describes one failing field. Loc is the path to the field,
// starting with the request part ("body", "query").
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// Errors collects every failing field of a request. A nil or empty Errors
// means the request is valid.
type Errors []FieldError

// Add appends a body field error.
func (e *Errors) Add(field, msg, typ string) {
	loc := []string{"body"}
	if field != "" {
		loc = append(loc, field)
	}
	*e = append(*e, FieldError{Loc: loc, Msg: msg, Type: typ})
}

// Err returns e as an error, or nil when empty.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", strings.Join(fe.Loc, "."), fe.Msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
