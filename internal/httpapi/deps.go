package httpapi

import (
	"sync/atomic"

	"akazi-engine/internal/config"
	"akazi-engine/internal/events"
	"akazi-engine/internal/orchestrate"
	"akazi-engine/internal/scheduler"
	"akazi-engine/internal/store"
)

type Deps struct {
	Store *store.Store
	Hub   *events.Hub
	Sched *scheduler.Scheduler
	Orch  *orchestrate.Orchestrator

	// CfgVal stores config.Config; atomic so the config PUT handler can
	// swap it under running handlers.
	CfgVal      *atomic.Value
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
