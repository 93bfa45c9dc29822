package memory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRebuilder struct {
	calls [][]Fact
	err   error
}

func (f *fakeRebuilder) Reinitialize(ctx context.Context, facts []Fact) error {
	f.calls = append(f.calls, facts)
	return f.err
}

func setupHandler(t *testing.T) (*Handler, *fakeRebuilder, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	rebuilder := &fakeRebuilder{}
	return NewHandler(NewStore(client, testKey), rebuilder), rebuilder, mr
}

func mount(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/memories", h.List)
	r.Post("/memories", h.Create)
	r.Delete("/memories/{memoryID}", h.Delete)
	return r
}

func TestHandler_ListReturnsSeedByDefault(t *testing.T) {
	h, _, _ := setupHandler(t)

	rec := httptest.NewRecorder()
	mount(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/memories", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []Fact `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, SeedFacts(), resp.Data)
}

func TestHandler_CreateAddsFactAndRebuildsSession(t *testing.T) {
	h, rebuilder, _ := setupHandler(t)

	rec := httptest.NewRecorder()
	body := `{"category":"client","content":"Repeat client: Mochi"}`
	mount(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/memories", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Data Fact `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Data.ID)
	assert.Equal(t, CategoryClient, resp.Data.Category)

	// The session was rebuilt with the full updated list.
	require.Len(t, rebuilder.calls, 1)
	assert.Len(t, rebuilder.calls[0], len(SeedFacts())+1)
}

func TestHandler_CreateRejectsUnknownCategory(t *testing.T) {
	h, rebuilder, _ := setupHandler(t)

	rec := httptest.NewRecorder()
	body := `{"category":"gossip","content":"nope"}`
	mount(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/memories", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rebuilder.calls)
}

func TestHandler_CreateRejectsEmptyContent(t *testing.T) {
	h, rebuilder, _ := setupHandler(t)

	rec := httptest.NewRecorder()
	body := `{"category":"misc","content":""}`
	mount(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/memories", strings.NewReader(body)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, rebuilder.calls)
}

func TestHandler_DeleteRemovesFactAndRebuildsSession(t *testing.T) {
	h, rebuilder, _ := setupHandler(t)

	rec := httptest.NewRecorder()
	mount(h).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/memories/"+SeedFacts()[0].ID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []Fact `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, len(SeedFacts())-1)
	require.Len(t, rebuilder.calls, 1)
}

func TestHandler_CreateSucceedsEvenIfRebuildFails(t *testing.T) {
	h, rebuilder, _ := setupHandler(t)
	rebuilder.err = assert.AnError

	rec := httptest.NewRecorder()
	body := `{"category":"misc","content":"still stored"}`
	mount(h).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/memories", strings.NewReader(body)))

	// The mutation is persisted either way; only the rebuild is degraded.
	assert.Equal(t, http.StatusCreated, rec.Code)
}
