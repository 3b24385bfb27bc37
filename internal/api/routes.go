package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/promptlab/internal/collections"
	"github.com/JaimeStill/promptlab/internal/config"
	"github.com/JaimeStill/promptlab/internal/infrastructure"
	"github.com/JaimeStill/promptlab/internal/prompts"
	"github.com/JaimeStill/promptlab/pkg/handlers"
	"github.com/JaimeStill/promptlab/pkg/openapi"
	"github.com/JaimeStill/promptlab/pkg/routes"
)

// Health is the body of the health endpoint.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func registerRoutes(r chi.Router, domain *Domain, runtime *Runtime) error {
	specBytes, err := openapi.MarshalJSON(buildSpec(runtime, domain))
	if err != nil {
		return fmt.Errorf("marshal openapi spec: %w", err)
	}

	groups := append(domain.Groups(), systemRoutes(runtime, openapi.ServeSpec(specBytes)))
	routes.Register(r, groups...)
	return nil
}

// Spec builds the OpenAPI document for the full API surface without
// starting a server.
func Spec(cfg *config.Config, infra *infrastructure.Infrastructure) *openapi.Spec {
	runtime := NewRuntime(cfg, infra)
	return buildSpec(runtime, NewDomain(runtime))
}

func buildSpec(runtime *Runtime, domain *Domain) *openapi.Spec {
	groups := append(domain.Groups(), systemRoutes(runtime, nil))
	return BuildSpec(runtime.Config.API.OpenAPI, runtime.Config.Version, groups...)
}

// BuildSpec documents every route in groups under the configured title.
func BuildSpec(cfg openapi.Config, version string, groups ...routes.Group) *openapi.Spec {
	spec := openapi.NewSpec(cfg.Title, version)
	spec.SetDescription(cfg.Description)
	spec.Components.AddSchemas(prompts.Schemas())
	spec.Components.AddSchemas(collections.Schemas())
	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"Health": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"status":  {Type: "string", Example: "healthy"},
				"version": {Type: "string"},
			},
			Required: []string{"status", "version"},
		},
	})

	routes.Document(spec, groups...)
	return spec
}

// systemRoutes serves health and readiness probes plus the OpenAPI document.
// serveSpec is nil while the document itself is being built.
func systemRoutes(runtime *Runtime, serveSpec http.HandlerFunc) routes.Group {
	version := runtime.Config.Version
	lc := runtime.Lifecycle

	return routes.Group{
		Tag: "System",
		Routes: []routes.Route{
			{
				Method:  "GET",
				Pattern: "/health",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					handlers.RespondJSON(w, http.StatusOK, Health{Status: "healthy", Version: version})
				},
				OpenAPI: &openapi.Operation{
					Summary: "Service health",
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("Service is up", "Health"),
					},
				},
			},
			{
				Method:  "GET",
				Pattern: "/readyz",
				Handler: func(w http.ResponseWriter, r *http.Request) {
					if !lc.Ready() {
						handlers.RespondDetail(w, http.StatusServiceUnavailable, "not ready")
						return
					}
					handlers.RespondJSON(w, http.StatusOK, Health{Status: "ready", Version: version})
				},
				OpenAPI: &openapi.Operation{
					Summary: "Service readiness",
					Responses: map[int]*openapi.Response{
						200: openapi.ResponseJSON("All subsystems started", "Health"),
						503: openapi.ResponseJSON("Starting or shutting down", "Detail"),
					},
				},
			},
			{
				Method:  "GET",
				Pattern: "/openapi.json",
				Handler: serveSpec,
				OpenAPI: &openapi.Operation{
					Summary: "OpenAPI document",
					Responses: map[int]*openapi.Response{
						200: {Description: "OpenAPI 3.1 document"},
					},
				},
			},
		},
	}
}
