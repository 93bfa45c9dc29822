package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guloku/lulu/internal/provider"
	"github.com/guloku/lulu/internal/session"
)

type staticSender struct {
	reply string
	err   error
}

func (s *staticSender) Send(ctx context.Context, text string, image *provider.Image) (string, error) {
	return s.reply, s.err
}

func postMessage(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.SendMessage(rec, req)
	return rec
}

func TestSendMessage_OK(t *testing.T) {
	h := NewHandler(NewConversation(&staticSender{reply: "hi there"}))

	rec := postMessage(t, h, `{"text":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data Message `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, RoleModel, resp.Data.Role)
	assert.Equal(t, "hi there", resp.Data.Text)
}

func TestSendMessage_EmptyBodyRejected(t *testing.T) {
	h := NewHandler(NewConversation(&staticSender{}))

	rec := postMessage(t, h, `{"text":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessage_InvalidJSONRejected(t *testing.T) {
	h := NewHandler(NewConversation(&staticSender{}))

	rec := postMessage(t, h, `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessage_InvalidAttachmentRejected(t *testing.T) {
	h := NewHandler(NewConversation(&staticSender{}))

	rec := postMessage(t, h, `{"text":"","attachment":{"data":"","mime_type":"image/png"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessage_SessionNotReady(t *testing.T) {
	h := NewHandler(NewConversation(&staticSender{err: session.ErrNotInitialized}))

	rec := postMessage(t, h, `{"text":"hello"}`)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSendMessage_RemoteFailureStillReturnsBubble(t *testing.T) {
	h := NewHandler(NewConversation(&staticSender{err: errors.New("boom")}))

	rec := postMessage(t, h, `{"text":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data Message `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Data.IsError)
	assert.Equal(t, FallbackText, resp.Data.Text)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestGetMessagesAndStatus(t *testing.T) {
	conv := NewConversation(&staticSender{reply: "ok"})
	h := NewHandler(conv)

	_, err := conv.Submit(context.Background(), "hello", nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.GetMessages(rec, httptest.NewRequest(http.MethodGet, "/api/v1/chat/messages", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []Message `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)

	rec = httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/api/v1/chat/status", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"in_flight":false`)
}
