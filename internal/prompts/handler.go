package prompts

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/JaimeStill/promptlab/internal/models"
	"github.com/JaimeStill/promptlab/pkg/handlers"
	"github.com/JaimeStill/promptlab/pkg/routes"
	"github.com/JaimeStill/promptlab/pkg/validation"
)

// Handler provides HTTP endpoints for prompt operations.
type Handler struct {
	sys         System
	logger      *slog.Logger
	maxBodySize int64
}

// NewHandler creates a Handler with the given system, logger, and body size cap.
func NewHandler(sys System, logger *slog.Logger, maxBodySize int64) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "prompts"),
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group definition for prompt endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/prompts",
		Tag:    "Prompts",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: specs.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: specs.Find},
			{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: specs.Create},
			{Method: "PUT", Pattern: "/{id}", Handler: h.Update, OpenAPI: specs.Update},
			{Method: "PATCH", Pattern: "/{id}", Handler: h.Patch, OpenAPI: specs.Patch},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: specs.Delete},
		},
	}
}

// List returns prompts newest first, optionally filtered by collection_id
// and search query parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.List(r.Context(), FiltersFromQuery(r.URL.Query()))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single prompt by its id path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	prompt, err := h.sys.Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prompt)
}

// Create processes a JSON body to create a new prompt.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd models.PromptCreate
	if err := validation.Decode(w, r, h.maxBodySize, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	prompt, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, prompt)
}

// Update replaces the fields present in the JSON body. Omitted fields keep
// their stored values.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd models.PromptUpdate
	if err := validation.Decode(w, r, h.maxBodySize, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	prompt, err := h.sys.Update(r.Context(), chi.URLParam(r, "id"), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prompt)
}

// Patch applies the fields present in the JSON body.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	var cmd models.PromptPatch
	if err := validation.Decode(w, r, h.maxBodySize, &cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnprocessableEntity, err)
		return
	}

	prompt, err := h.sys.Patch(r.Context(), chi.URLParam(r, "id"), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, prompt)
}

// Delete removes a prompt by its id path parameter.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
