// Package extract defines the one contract every source implementation
// satisfies, plus the shared HTTP/parsing plumbing they all lean on.
package extract

import (
	"context"

	"akazi-engine/internal/domain"
)

// Extractor turns one external site into raw postings. Implementations keep
// their endpoint and layout knowledge to themselves; a posting with an empty
// title or URL must never be returned. Errors are advisory: the orchestrator
// logs them and moves on, so returning an error costs only this source's
// contribution to the current run.
type Extractor interface {
	Name() string
	Extract(ctx context.Context) ([]domain.RawPosting, error)
}
