package httpapi

import (
	"net/http"
	"strconv"

	"akazi-engine/internal/store"
)

type RunsHandler struct {
	Store *store.Store
}

func (h RunsHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	runs, err := h.Store.ListRunLogs(r.Context(), limit)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, runs)
}
