package httpapi

import (
	"net/http"
	"strconv"

	"akazi-engine/internal/store"
)

type JobsHandler struct {
	Store *store.Store
}

func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	jobs, err := h.Store.ListJobs(r.Context(), store.ListJobsOpts{
		Category: q.Get("category"),
		Source:   q.Get("source"),
		Limit:    limit,
	})
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, "list_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}
