// Package validation validates decoded request bodies with
// go-playground/validator and reports failures as loc/msg/type field errors.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a configured validator instance. It is safe for
// concurrent use.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports fields by their JSON names.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s against its validate tags.
// Returns Errors when any field fails.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var out Errors
	for _, fe := range verrs {
		msg, typ := describe(fe)
		out.Add(fe.Field(), msg, typ)
	}
	return out
}

// Var validates a single value against tag and reports failures under field.
// Results can be appended to a running Errors.
func (v *Validator) Var(field string, value any, tag string) Errors {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var out Errors
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out.Add(field, err.Error(), TypeValueError)
		return out
	}

	for _, fe := range verrs {
		msg, typ := describe(fe)
		out.Add(field, msg, typ)
	}
	return out
}

func describe(fe validator.FieldError) (msg, typ string) {
	switch fe.Tag() {
	case "required":
		return "Field required", TypeMissing
	case "min":
		return fmt.Sprintf("String should have at least %s %s", fe.Param(), plural(fe.Param(), "character")), TypeTooShort
	case "max":
		return fmt.Sprintf("String should have at most %s %s", fe.Param(), plural(fe.Param(), "character")), TypeTooLong
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fe.Tag()), TypeValueError
	}
}

func plural(n, word string) string {
	if n == "1" {
		return word
	}
	return word + "s"
}

// Decode reads a JSON body into dst, rejecting unknown fields and bodies
// larger than maxBytes. Decode failures are returned as Errors so callers
// can render them like any other validation failure.
func Decode(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) error {
	body := r.Body
	if maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return decodeErrors(err)
	}

	if dec.More() {
		var out Errors
		out.Add("", "JSON body must contain a single value", TypeJSONInvalid)
		return out
	}
	return nil
}

func decodeErrors(err error) Errors {
	var out Errors

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	var maxErr *http.MaxBytesError

	switch {
	case errors.As(err, &typeErr):
		if typeErr.Field == "" {
			out.Add("", "Input should be a valid JSON object", TypeJSONInvalid)
		} else {
			out.Add(typeErr.Field, fmt.Sprintf("Input should be a valid %s", typeName(typeErr.Type)), typeFor(typeErr.Type))
		}
	case errors.As(err, &maxErr):
		out.Add("", fmt.Sprintf("Request body exceeds %d bytes", maxErr.Limit), TypeJSONInvalid)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		out.Add("", "JSON decode error", TypeJSONInvalid)
	case errors.Is(err, io.EOF):
		out.Add("", "Field required", TypeMissing)
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		field := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), `"`)
		out.Add(field, "Extra inputs are not permitted", TypeExtraForbidden)
	default:
		out.Add("", "JSON decode error", TypeJSONInvalid)
	}

	return out
}

func typeName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Struct:
		return "object"
	default:
		return t.Kind().String()
	}
}

func typeFor(t reflect.Type) string {
	if typeName(t) == "string" {
		return TypeString
	}
	return TypeValueError
}
