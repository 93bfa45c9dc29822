package memory

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/guloku/lulu/internal/api"
)

// SessionRebuilder rebuilds the chat session from the latest fact list.
// Satisfied by session.Manager.
type SessionRebuilder interface {
	Reinitialize(ctx context.Context, facts []Fact) error
}

// Handler handles memory HTTP endpoints. Every successful mutation
// explicitly rebuilds the chat session so the live system instruction
// tracks the latest memory snapshot.
type Handler struct {
	store    *Store
	sessions SessionRebuilder
	validate *validator.Validate
}

// NewHandler creates a new memory handler.
func NewHandler(store *Store, sessions SessionRebuilder) *Handler {
	return &Handler{
		store:    store,
		sessions: sessions,
		validate: validator.New(),
	}
}

// List returns the full fact list.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, h.store.Load(r.Context()))
}

// Create appends a new fact and rebuilds the session.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateFactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, api.ErrBadRequest)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		api.HandleError(w, api.NewValidationError(err.Error()))
		return
	}

	facts, err := h.store.Add(r.Context(), Fact{Category: Category(req.Category), Content: req.Content})
	if err != nil {
		slog.Error("adding memory fact", "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	h.rebuildSession(r.Context(), facts)
	api.JSON(w, http.StatusCreated, facts[len(facts)-1])
}

// Delete removes a fact by id and rebuilds the session. An unknown id is
// not an error; the list simply comes back unchanged.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "memoryID")
	if id == "" {
		api.HandleError(w, api.NewBadRequestError("missing memory ID"))
		return
	}

	facts, err := h.store.Remove(r.Context(), id)
	if err != nil {
		slog.Error("removing memory fact", "error", err)
		api.HandleError(w, api.ErrInternalServer)
		return
	}

	h.rebuildSession(r.Context(), facts)
	api.JSON(w, http.StatusOK, facts)
}

// rebuildSession swaps in a session bound to the new fact list. A rebuild
// failure leaves the previous session live, so the mutation itself still
// succeeds; the stale instruction is only logged.
func (h *Handler) rebuildSession(ctx context.Context, facts []Fact) {
	if err := h.sessions.Reinitialize(ctx, facts); err != nil {
		slog.Warn("memory: session rebuild failed, previous session stays active", "error", err)
	}
}
