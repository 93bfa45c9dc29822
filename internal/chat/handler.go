package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/guloku/lulu/internal/api"
	"github.com/guloku/lulu/internal/session"
)

// Handler handles chat HTTP endpoints.
type Handler struct {
	conv     *Conversation
	validate *validator.Validate
}

// NewHandler creates a new chat handler.
func NewHandler(conv *Conversation) *Handler {
	return &Handler{
		conv:     conv,
		validate: validator.New(),
	}
}

// GetMessages returns the transcript in chronological order.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, h.conv.Messages())
}

// Status reports whether a send is in flight, for loading indicators.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	api.JSON(w, http.StatusOK, map[string]bool{"in_flight": h.conv.InFlight()})
}

// SendMessage submits one user message and replies with the resulting
// model message (which may be an error bubble).
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.HandleError(w, api.ErrBadRequest)
		return
	}

	var attachment *Attachment
	if req.Attachment != nil {
		if err := h.validate.Struct(req.Attachment); err != nil {
			api.HandleError(w, api.NewValidationError(err.Error()))
			return
		}
		attachment = &Attachment{Kind: "image", Data: req.Attachment.Data, MimeType: req.Attachment.MimeType}
	}

	msg, err := h.conv.Submit(r.Context(), req.Text, attachment)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyMessage):
			api.HandleError(w, api.ErrEmptyMessage)
		case errors.Is(err, ErrBusy):
			api.HandleError(w, api.ErrSendInFlight)
		case errors.Is(err, session.ErrNotInitialized):
			api.HandleError(w, api.ErrSessionNotReady)
		default:
			api.HandleError(w, api.ErrInternalServer)
		}
		return
	}

	api.JSON(w, http.StatusOK, msg)
}
