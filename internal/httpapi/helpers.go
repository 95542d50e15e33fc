package httpapi

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
)

// errEnvelope is the shape every non-2xx JSON response takes, carrying the
// request id so a UI error can be matched to its access-log line.
type errEnvelope struct {
	Error struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id,omitempty"`
	} `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	var e errEnvelope
	e.Error.Code = code
	e.Error.Message = message
	e.Error.RequestID = RequestIDFrom(r.Context())
	writeJSON(w, status, e)
}

// methodMux routes one path by HTTP method, answering anything unlisted
// with 405 and an Allow header.
func methodMux(handlers map[string]http.HandlerFunc) http.HandlerFunc {
	allow := make([]string, 0, len(handlers))
	for m := range handlers {
		allow = append(allow, m)
	}
	sort.Strings(allow)
	allowHeader := strings.Join(allow, ", ")

	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.Method]; ok {
			h(w, r)
			return
		}
		w.Header().Set("Allow", allowHeader)
		writeError(w, r, http.StatusMethodNotAllowed, "method_not_allowed",
			r.Method+" is not supported here")
	}
}
