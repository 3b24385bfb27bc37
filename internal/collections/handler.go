package collections

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/pkg/handlers"
	"github.com/JaimeStill/promptlab/pkg/routes"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

// Handler provides HTTP endpoints for collection operations.
type Handler struct {
	sys         System
	logger      *slog.Logger
	maxBodySize int64
}

// NewHandler creates a Handler with the given system, logger, and body size cap.
func NewHandler(sys System, logger *slog.Logger, maxBodySize int64) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "collections"),
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group definition for collection endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/collections",
		Tag:    "Collections",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: specs.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: specs.Find},
			{Method: "GET", Pattern: "/{id}/prompts", Handler: h.Prompts, OpenAPI: specs.Prompts},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: specs.Create},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: specs.Delete},
		},
	}
}

// List returns every collection.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single collection by its id path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	collection, err := h.sys.Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, collection)
}

// Prompts returns the prompts assigned to a collection, newest first.
func (h *Handler) Prompts(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Prompts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Create processes a JSON body to create a new collection.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd models.CollectionCreate
	if err := validation.Decode(w, r, h.maxBodySize, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	collection, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, collection)
}

// Delete removes a collection and orphans its prompts.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
