// Package orchestrate fans out over the registered extractors, contains
// their failures, and turns whatever survived into one deduplicated,
// deadline-ranked posting list.
package orchestrate

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"akazi-engine/internal/domain"
	"akazi-engine/internal/extract"
)

type Orchestrator struct {
	extractors []extract.Extractor
	timeout    time.Duration
}

func New(extractors []extract.Extractor) *Orchestrator {
	return &Orchestrator{
		extractors: extractors,
		timeout:    2 * time.Minute,
	}
}

// WithTimeout overrides the per-extractor deadline. Mostly for tests.
func (o *Orchestrator) WithTimeout(d time.Duration) *Orchestrator {
	o.timeout = d
	return o
}

// Run scrapes the selected sources concurrently and returns the merged,
// deduplicated, ranked postings. An empty or nil sourceNames selects every
// registered extractor. One extractor failing, timing out, or panicking on
// its own network stack costs only that source's postings.
func (o *Orchestrator) Run(ctx context.Context, sourceNames []string) []domain.MergedPosting {
	selected := o.selectExtractors(sourceNames)
	if len(selected) == 0 {
		log.Printf("[orchestrate] no extractors match %v", sourceNames)
		return nil
	}

	// Results keyed by registry position so the merge below is deterministic
	// no matter which extractor finishes first.
	batches := make([][]domain.RawPosting, len(selected))

	var g errgroup.Group
	for i, ex := range selected {
		i, ex := i, ex
		g.Go(func() error {
			ectx, cancel := context.WithTimeout(ctx, o.timeout)
			defer cancel()

			log.Printf("[%s] running...", ex.Name())
			postings, err := runExtract(ectx, ex)
			if err != nil {
				log.Printf("[%s] extract failed: %v", ex.Name(), err)
				return nil // isolate: siblings keep going
			}
			batches[i] = postings
			return nil
		})
	}
	_ = g.Wait()

	merged := dedupe(batches)
	rank(merged)

	total := 0
	for _, b := range batches {
		total += len(b)
	}
	log.Printf("[orchestrate] sources=%d scraped=%d merged=%d", len(selected), total, len(merged))
	return merged
}

// runExtract converts an extractor panic into an error before it reaches
// the errgroup, which would otherwise re-panic in Wait and abort the
// surviving sources too.
func runExtract(ctx context.Context, ex extract.Extractor) (ps []domain.RawPosting, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extractor panic: %v", r)
		}
	}()
	return ex.Extract(ctx)
}

// Names lists the registered extractor names in registry order.
func (o *Orchestrator) Names() []string {
	out := make([]string, 0, len(o.extractors))
	for _, ex := range o.extractors {
		out = append(out, ex.Name())
	}
	return out
}

// selectExtractors matches requested names against registered ones by
// substring in either direction, so "kora" finds "kora.rw" and vice versa.
func (o *Orchestrator) selectExtractors(sourceNames []string) []extract.Extractor {
	if len(sourceNames) == 0 {
		return o.extractors
	}
	var out []extract.Extractor
	for _, ex := range o.extractors {
		name := ex.Name()
		for _, want := range sourceNames {
			if strings.Contains(name, want) || strings.Contains(want, name) {
				out = append(out, ex)
				break
			}
		}
	}
	return out
}

// dedupe drops later postings with the same lowercased (title, company) pair.
// Exact string identity only; near-duplicates with different spellings pass.
func dedupe(batches [][]domain.RawPosting) []domain.MergedPosting {
	seen := make(map[string]bool)
	var out []domain.MergedPosting
	for _, batch := range batches {
		for _, p := range batch {
			if !p.Valid() {
				continue
			}
			key := strings.ToLower(strings.TrimSpace(p.Title)) + "\x00" + strings.ToLower(strings.TrimSpace(p.Company))
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, domain.MergedPosting{
				RawPosting:     p,
				ParsedDeadline: ParseDeadline(p.Deadline),
			})
		}
	}
	return out
}

// rank orders soonest deadline first, any deadline before none, and falls
// back to case-insensitive title order so the comparator is total.
func rank(ps []domain.MergedPosting) {
	sort.SliceStable(ps, func(i, j int) bool {
		a, b := ps[i].ParsedDeadline, ps[j].ParsedDeadline
		switch {
		case a != nil && b != nil:
			if !a.Equal(*b) {
				return a.Before(*b)
			}
		case a != nil:
			return true
		case b != nil:
			return false
		}
		return strings.ToLower(ps[i].Title) < strings.ToLower(ps[j].Title)
	})
}
