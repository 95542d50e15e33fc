package main

import (
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"akazi-engine/internal/config"
	"akazi-engine/internal/domain"
	"akazi-engine/internal/events"
	"akazi-engine/internal/extract"
	"akazi-engine/internal/extract/jobinrwanda"
	"akazi-engine/internal/extract/kora"
	"akazi-engine/internal/extract/mailbox"
	"akazi-engine/internal/extract/mucuruzi"
	"akazi-engine/internal/extract/umurimo"
	"akazi-engine/internal/httpapi"
	"akazi-engine/internal/ingest"
	"akazi-engine/internal/orchestrate"
	"akazi-engine/internal/scheduler"
	"akazi-engine/internal/store"
)

func main() {
	_ = godotenv.Load()

	dataDir := os.Getenv("AKAZI_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	// One engine per data dir; two processes sharing one sqlite file ends
	// in corruption.
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("lock data dir: %v", err)
	}
	if !locked {
		log.Fatalf("another engine already owns %s", dataDir)
	}
	defer func() { _ = lock.Unlock() }()

	userCfgPath, err := config.EnsureUserConfig(dataDir, filepath.Join("config", "config.yml"))
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	cfg, validation := config.NormalizeAndValidate(cfg)
	for _, wmsg := range validation.Warnings {
		log.Printf("[config] warning: %s", wmsg)
	}
	if !validation.OK() {
		for _, emsg := range validation.Errors {
			log.Printf("[config] error: %s", emsg)
		}
		log.Fatal("config is invalid; fix it and restart")
	}

	var cfgVal atomic.Value
	cfgVal.Store(cfg)

	st, err := store.Open(filepath.Join(dataDir, "akazi.db"))
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

	hub := events.NewHub()

	limiter := extract.NewHostLimiter(cfg.Limits.RequestsPerSecond, cfg.Limits.Burst)
	client := extract.NewClient(limiter)

	extractors := []extract.Extractor{
		jobinrwanda.New(client),
		kora.New(client),
		mucuruzi.New(client),
		umurimo.New(client),
	}
	if cfg.Email.Enabled {
		extractors = append(extractors, &mailbox.Extractor{Cfg: cfg})
	}

	orch := orchestrate.New(extractors)

	ing := ingest.New(st)
	ing.OnCreated = func(j domain.Job) {
		hub.Publish(events.Make(events.JobCreated, map[string]any{"id": j.ID, "title": j.Title}))
	}

	sources := cfg.EnabledSources()
	if cfg.Email.Enabled {
		sources = append(sources, "email")
	}

	var loc *time.Location
	if tz := cfg.Scheduler.Timezone; tz != "" {
		loc, _ = time.LoadLocation(tz)
	}

	sched := scheduler.New(orch, ing, st, hub, scheduler.Options{
		Interval:   time.Duration(cfg.Scheduler.IntervalHours) * time.Hour,
		RunOnStart: cfg.Scheduler.RunOnStart,
		Sources:    sources,
		Location:   loc,
	})
	sched.Start()
	defer sched.Stop()

	mux := httpapi.NewMux(httpapi.Deps{
		Store:       st,
		Hub:         hub,
		Sched:       sched,
		Orch:        orch,
		CfgVal:      &cfgVal,
		UserCfgPath: userCfgPath,
		LoadCfg:     func() (config.Config, error) { return config.Load(userCfgPath) },
	})

	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.AccessLog,
		httpapi.Recover,
		httpapi.Cors,
	)

	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(cfg.App.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("engine listening on http://%s (data=%s)", addr, dataDir)

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Fatal(srv.Serve(ln))
}
