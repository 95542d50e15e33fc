package httpapi

import (
	"errors"
	"net/http"

	"akazi-engine/internal/scheduler"
)

type SchedulerHandler struct {
	Sched *scheduler.Scheduler
}

func (h SchedulerHandler) RunManual(w http.ResponseWriter, r *http.Request) {
	if err := h.Sched.RunManual(); err != nil {
		if errors.Is(err, scheduler.ErrRunInProgress) {
			writeError(w, r, http.StatusConflict, "run_in_progress", err.Error())
			return
		}
		writeError(w, r, http.StatusInternalServerError, "run_failed", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (h SchedulerHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Sched.Status())
}

func (h SchedulerHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.Sched.Start()
	writeJSON(w, http.StatusOK, h.Sched.Status())
}

func (h SchedulerHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.Sched.Stop()
	writeJSON(w, http.StatusOK, h.Sched.Status())
}
