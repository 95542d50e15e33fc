package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akazi-engine/internal/events"
)

func TestWriteJSONSetsContentTypeAndStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusCreated, map[string]int{"n": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n":3}`, rec.Body.String())
}

func TestWriteErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	req = req.WithContext(withRequestID(req.Context(), "req-42"))

	writeError(rec, req, http.StatusConflict, "run_in_progress", "busy")

	assert.Equal(t, http.StatusConflict, rec.Code)

	var e errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "run_in_progress", e.Error.Code)
	assert.Equal(t, "busy", e.Error.Message)
	assert.Equal(t, "req-42", e.Error.RequestID)
}

func TestMethodMuxRejectsUnlistedMethods(t *testing.T) {
	called := false
	h := methodMux(map[string]http.HandlerFunc{
		http.MethodGet:  func(w http.ResponseWriter, r *http.Request) { called = true },
		http.MethodPost: func(w http.ResponseWriter, r *http.Request) {},
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodDelete, "/jobs", nil))

	assert.False(t, called)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))

	var e errEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	assert.Equal(t, "method_not_allowed", e.Error.Code)

	rec = httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))
	assert.True(t, called)
}

func TestServeSSEOpensWithConnectedEvent(t *testing.T) {
	hub := events.NewHub()
	h := EventsHandler{Hub: hub}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // one frame, then the handler returns

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	h.ServeSSE(rec, req)

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "id: 1\n")
	assert.Contains(t, rec.Body.String(), `"type":"connected"`)
}
