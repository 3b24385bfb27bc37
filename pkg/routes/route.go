package routes

import (
	"net/http"

	"github.com/JaimeStill/promptlab/pkg/openapi"
)

// Route binds an HTTP method and chi pattern to a handler.
// OpenAPI, when set, documents the route in the generated spec.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
