// Package ingest upserts merged postings into storage. Identity is the
// source URL: first sighting inserts, every later sighting fully replaces
// the mutable fields and bumps updated_at.
package ingest

import (
	"context"
	"log"
	"time"

	"akazi-engine/internal/classify"
	"akazi-engine/internal/domain"
	"akazi-engine/internal/store"
)

// Store is the slice of persistence the ingestor and scheduler consume.
type Store interface {
	FindJobByURL(ctx context.Context, url string) (*domain.Job, error)
	InsertJob(ctx context.Context, j domain.Job) (int64, error)
	UpdateJob(ctx context.Context, id int64, j domain.Job) error
	InsertRunLog(ctx context.Context, sourceName string) (int64, error)
	UpdateRunLog(ctx context.Context, id int64, out store.RunOutcome) error
}

// Stats aggregates one batch for the run log.
type Stats struct {
	Found   int
	Added   int
	Updated int
	Failed  int
}

type Ingestor struct {
	store Store
	now   func() time.Time

	// OnCreated fires after each successful insert (SSE notify upstream).
	OnCreated func(j domain.Job)
}

func New(st Store) *Ingestor {
	return &Ingestor{store: st, now: time.Now}
}

// Process upserts one posting. created is true on first sighting of the URL.
func (ing *Ingestor) Process(ctx context.Context, p domain.MergedPosting) (created bool, err error) {
	existing, err := ing.store.FindJobByURL(ctx, p.URL)
	if err != nil {
		return false, err
	}

	now := ing.now().UTC()
	j := domain.Job{
		Title:       p.Title,
		Company:     p.Company,
		Location:    p.Location,
		Description: p.Snippet,
		JobType:     classify.EmploymentType(p.Title, p.Snippet),
		Category:    classify.Category(p.Title),
		PostedDate:  p.ParsedDeadline,
		SourceURL:   p.URL,
		SourceName:  p.Source,
		UpdatedAt:   now,
	}
	if j.Company == "" {
		j.Company = domain.CompanyUnknown
	}

	if existing == nil {
		j.CreatedAt = now
		id, err := ing.store.InsertJob(ctx, j)
		if err != nil {
			return false, err
		}
		j.ID = id
		if ing.OnCreated != nil {
			ing.OnCreated(j)
		}
		return true, nil
	}

	// full replace of mutable fields; identity and created_at stay
	j.CreatedAt = existing.CreatedAt
	if err := ing.store.UpdateJob(ctx, existing.ID, j); err != nil {
		return false, err
	}
	return false, nil
}

// ProcessBatch attempts every posting; one record failing is logged with its
// title and costs only that record.
func (ing *Ingestor) ProcessBatch(ctx context.Context, ps []domain.MergedPosting) Stats {
	st := Stats{Found: len(ps)}
	for _, p := range ps {
		created, err := ing.Process(ctx, p)
		if err != nil {
			st.Failed++
			log.Printf("[ingest] upsert failed title=%q url=%q: %v", p.Title, p.URL, err)
			continue
		}
		if created {
			st.Added++
		} else {
			st.Updated++
		}
	}
	return st
}
