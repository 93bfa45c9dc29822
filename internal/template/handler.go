package template

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/guloku/lulu/internal/api"
)

// Handler handles template HTTP endpoints.
type Handler struct{}

// NewHandler creates a new template handler.
func NewHandler() *Handler {
	return &Handler{}
}

// List returns the full template catalog.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, Catalog())
}

// Get returns the prompt text at the given index.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		api.HandleError(w, api.NewBadRequestError("invalid template index"))
		return
	}

	prompt, err := Select(index)
	if err != nil {
		api.HandleError(w, api.NewNotFoundError("template not found"))
		return
	}

	api.JSON(w, http.StatusOK, map[string]string{"prompt": prompt})
}
