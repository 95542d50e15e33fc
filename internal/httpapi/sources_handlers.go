package httpapi

import (
	"net/http"
	"sync/atomic"

	"akazi-engine/internal/config"
	"akazi-engine/internal/orchestrate"
)

type SourcesHandler struct {
	Orch   *orchestrate.Orchestrator
	CfgVal *atomic.Value // stores config.Config
}

type sourceInfo struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// List reports every registered extractor and whether the current config
// enables it. Sources the config never mentions (like the email extractor)
// count as enabled by registration alone.
func (h SourcesHandler) List(w http.ResponseWriter, r *http.Request) {
	cfg := h.CfgVal.Load().(config.Config)

	enabled := make(map[string]bool, len(cfg.Sources))
	known := make(map[string]bool, len(cfg.Sources))
	for _, s := range cfg.Sources {
		known[s.Name] = true
		enabled[s.Name] = s.Enabled
	}

	var out []sourceInfo
	for _, name := range h.Orch.Names() {
		on := enabled[name]
		if !known[name] {
			on = true
		}
		out = append(out, sourceInfo{Name: name, Enabled: on})
	}
	writeJSON(w, http.StatusOK, out)
}
