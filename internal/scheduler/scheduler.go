// Package scheduler owns the recurring ingestion ticker and the run-lock.
// At most one pipeline executes process-wide; ticks that land during an
// active run are skipped, manual triggers are rejected with
// ErrRunInProgress rather than queued.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"akazi-engine/internal/domain"
	"akazi-engine/internal/events"
	"akazi-engine/internal/ingest"
	"akazi-engine/internal/store"
)

// ErrRunInProgress rejects a manual trigger while a run is active.
var ErrRunInProgress = errors.New("ingestion run already in progress")

// Orchestrator is the scraping front half of the pipeline.
type Orchestrator interface {
	Run(ctx context.Context, sourceNames []string) []domain.MergedPosting
}

// Pruner is implemented by stores that can age out old run logs. Jobs are
// never pruned.
type Pruner interface {
	PruneRunLogs(ctx context.Context, olderThan time.Duration) (int64, error)
}

const runLogRetention = 90 * 24 * time.Hour

type Options struct {
	Interval   time.Duration
	RunOnStart bool
	Sources    []string // fixed source list, one Orchestrator.Run each
	Location   *time.Location
}

type Status struct {
	Scheduled bool       `json:"scheduled"`
	Running   bool       `json:"running"`
	LastRunAt *time.Time `json:"lastRunAt,omitempty"`
	NextRunAt *time.Time `json:"nextRunAt,omitempty"`
	LastError string     `json:"lastError,omitempty"`
}

type Scheduler struct {
	orch Orchestrator
	ing  *ingest.Ingestor
	st   ingest.Store
	hub  *events.Hub
	opts Options

	mu        sync.Mutex
	running   bool
	stop      chan struct{}
	lastRunAt *time.Time
	nextRunAt *time.Time
	lastError string
}

func New(orch Orchestrator, ing *ingest.Ingestor, st ingest.Store, hub *events.Hub, opts Options) *Scheduler {
	if opts.Interval <= 0 {
		opts.Interval = 6 * time.Hour
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Scheduler{orch: orch, ing: ing, st: st, hub: hub, opts: opts}
}

// Start arms the ticker. Calling Start while scheduled is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop != nil {
		return
	}
	stop := make(chan struct{})
	s.stop = stop
	next := time.Now().In(s.opts.Location).Add(s.opts.Interval)
	s.nextRunAt = &next
	log.Printf("[scheduler] started interval=%s sources=%v", s.opts.Interval, s.opts.Sources)
	go s.loop(stop)
}

// Stop cancels future ticks. An in-flight run is not interrupted.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop == nil {
		return
	}
	close(s.stop)
	s.stop = nil
	s.nextRunAt = nil
	log.Printf("[scheduler] stopped")
}

// RunManual kicks off one run on its own goroutine. The rejection (if any)
// is immediate; completion is observable via Status and the run logs.
func (s *Scheduler) RunManual() error {
	if !s.begin() {
		return ErrRunInProgress
	}
	go func() {
		defer s.end()
		s.runAll(context.Background())
	}()
	return nil
}

func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Status{
		Scheduled: s.stop != nil,
		Running:   s.running,
		LastRunAt: s.lastRunAt,
		NextRunAt: s.nextRunAt,
		LastError: s.lastError,
	}
}

func (s *Scheduler) loop(stop chan struct{}) {
	if s.opts.RunOnStart {
		s.tick()
	}
	t := time.NewTicker(s.opts.Interval)
	defer t.Stop()

	for {
		select {
		case <-stop:
			return
		case <-t.C:
			s.mu.Lock()
			next := time.Now().In(s.opts.Location).Add(s.opts.Interval)
			s.nextRunAt = &next
			s.mu.Unlock()
			s.tick()
		}
	}
}

func (s *Scheduler) tick() {
	if err := s.runOnce(context.Background()); errors.Is(err, ErrRunInProgress) {
		log.Printf("[scheduler] tick skipped: previous run still active")
	}
}

// runOnce is the synchronous form of RunManual; the ticker and the tests
// use it.
func (s *Scheduler) runOnce(ctx context.Context) error {
	if !s.begin() {
		return ErrRunInProgress
	}
	defer s.end()
	s.runAll(ctx)
	return nil
}

func (s *Scheduler) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return false
	}
	s.running = true
	return true
}

func (s *Scheduler) end() {
	s.mu.Lock()
	now := time.Now().In(s.opts.Location)
	s.lastRunAt = &now
	s.running = false
	s.mu.Unlock()
}

// runAll processes the configured sources one at a time: a single failing
// source burns its own run log, not its neighbours'.
func (s *Scheduler) runAll(ctx context.Context) {
	if s.hub != nil {
		s.hub.Publish(events.Make(events.RunStarted, map[string]any{"sources": s.opts.Sources}))
	}

	var firstErr string
	for _, source := range s.opts.Sources {
		if err := s.runSource(ctx, source); err != nil {
			log.Printf("[scheduler] source=%s failed: %v", source, err)
			if firstErr == "" {
				firstErr = err.Error()
			}
		}
	}

	s.mu.Lock()
	s.lastError = firstErr
	s.mu.Unlock()

	if p, ok := s.st.(Pruner); ok {
		if n, err := p.PruneRunLogs(ctx, runLogRetention); err != nil {
			log.Printf("[scheduler] prune run logs: %v", err)
		} else if n > 0 {
			log.Printf("[scheduler] pruned %d old run logs", n)
		}
	}

	if s.hub != nil {
		s.hub.Publish(events.Make(events.RunFinished, nil))
	}
}

func (s *Scheduler) runSource(ctx context.Context, source string) error {
	logID, err := s.st.InsertRunLog(ctx, source)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}

	stats, runErr := s.pipeline(ctx, source)

	outcome := store.RunOutcome{
		Status:      domain.RunCompleted,
		JobsFound:   stats.Found,
		JobsAdded:   stats.Added,
		JobsUpdated: stats.Updated,
	}
	if runErr != nil {
		outcome.Status = domain.RunFailed
		outcome.ErrorMessage = runErr.Error()
	}
	if err := s.st.UpdateRunLog(ctx, logID, outcome); err != nil {
		log.Printf("[scheduler] source=%s close run log: %v", source, err)
	}
	log.Printf("[scheduler] source=%s status=%s found=%d added=%d updated=%d",
		source, outcome.Status, stats.Found, stats.Added, stats.Updated)
	return runErr
}

// pipeline runs scrape+ingest for one source, converting a panic anywhere
// below into the run log's failure message.
func (s *Scheduler) pipeline(ctx context.Context, source string) (stats ingest.Stats, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pipeline panic: %v", r)
		}
	}()

	postings := s.orch.Run(ctx, []string{source})
	stats = s.ing.ProcessBatch(ctx, postings)

	if stats.Found > 0 && stats.Failed == stats.Found {
		return stats, fmt.Errorf("all %d records failed to persist", stats.Found)
	}
	return stats, nil
}
