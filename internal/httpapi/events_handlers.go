package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"akazi-engine/internal/events"
)

// keepaliveEvery must beat the usual proxy/browser idle timeout of 60s.
const keepaliveEvery = 25 * time.Second

type EventsHandler struct {
	Hub *events.Hub
}

// ServeSSE streams hub events to one client. Each event carries an id so a
// reconnecting EventSource can tell how much it missed; a comment line goes
// out periodically to keep idle connections open. CORS headers come from
// the shared middleware.
func (h EventsHandler) ServeSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, r, http.StatusInternalServerError, "stream_unsupported", "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")

	ch := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(ch)

	keepalive := time.NewTicker(keepaliveEvery)
	defer keepalive.Stop()

	var id uint64
	send := func(payload string) bool {
		id++
		if _, err := fmt.Fprintf(w, "id: %d\ndata: %s\n\n", id, payload); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}

	if !send(events.Make("connected", nil)) {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case <-keepalive.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case msg := <-ch:
			if !send(msg) {
				return
			}
		}
	}
}
