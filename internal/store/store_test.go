package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akazi-engine/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleJob(url string) domain.Job {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	return domain.Job{
		Title:       "Accountant",
		Company:     "Acme",
		Location:    "Kigali",
		Description: "keep the books",
		JobType:     "Full-time",
		Category:    "Finance",
		SourceURL:   url,
		SourceName:  "kora.rw",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestJobInsertFindUpdate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	missing, err := s.FindJobByURL(ctx, "https://x/none")
	require.NoError(t, err)
	assert.Nil(t, missing, "absent url is nil, not an error")

	j := sampleJob("https://x/1")
	deadline := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	j.PostedDate = &deadline

	id, err := s.InsertJob(ctx, j)
	require.NoError(t, err)
	require.Positive(t, id)

	got, err := s.FindJobByURL(ctx, "https://x/1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Accountant", got.Title)
	require.NotNil(t, got.PostedDate)
	assert.True(t, got.PostedDate.Equal(deadline))

	j.Title = "Senior Accountant"
	j.JobType = "Contract"
	j.PostedDate = nil
	j.UpdatedAt = j.UpdatedAt.Add(time.Hour)
	require.NoError(t, s.UpdateJob(ctx, id, j))

	got, err = s.FindJobByURL(ctx, "https://x/1")
	require.NoError(t, err)
	assert.Equal(t, "Senior Accountant", got.Title)
	assert.Equal(t, "Contract", got.JobType)
	assert.Nil(t, got.PostedDate)
	assert.Equal(t, j.CreatedAt.UTC(), got.CreatedAt.UTC())
}

func TestJobSourceURLUnique(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.InsertJob(ctx, sampleJob("https://x/1"))
	require.NoError(t, err)

	_, err = s.InsertJob(ctx, sampleJob("https://x/1"))
	assert.Error(t, err, "second insert with the same source_url violates the unique index")
}

func TestListJobsFilters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := sampleJob("https://x/1")
	b := sampleJob("https://x/2")
	b.Category = "Technology"
	b.SourceName = "umurimo.com"
	for _, j := range []domain.Job{a, b} {
		_, err := s.InsertJob(ctx, j)
		require.NoError(t, err)
	}

	all, err := s.ListJobs(ctx, ListJobsOpts{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tech, err := s.ListJobs(ctx, ListJobsOpts{Category: "Technology"})
	require.NoError(t, err)
	require.Len(t, tech, 1)
	assert.Equal(t, "https://x/2", tech[0].SourceURL)

	kora, err := s.ListJobs(ctx, ListJobsOpts{Source: "kora.rw"})
	require.NoError(t, err)
	require.Len(t, kora, 1)
	assert.Equal(t, "https://x/1", kora[0].SourceURL)
}

func TestRunLogLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.InsertRunLog(ctx, "kora.rw")
	require.NoError(t, err)

	logs, err := s.ListRunLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, domain.RunStarted, logs[0].Status)
	assert.Nil(t, logs[0].CompletedAt)
	assert.Empty(t, logs[0].ErrorMessage)

	err = s.UpdateRunLog(ctx, id, RunOutcome{
		Status:       domain.RunFailed,
		JobsFound:    7,
		ErrorMessage: "timeout fetching listing",
	})
	require.NoError(t, err)

	logs, err = s.ListRunLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, domain.RunFailed, logs[0].Status)
	assert.Equal(t, 7, logs[0].JobsFound)
	assert.Equal(t, "timeout fetching listing", logs[0].ErrorMessage)
	assert.NotNil(t, logs[0].CompletedAt)
}

func TestPruneRunLogs(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// one old row, hand-dated to dodge InsertRunLog's now()
	_, err := s.db.ExecContext(ctx, `
INSERT INTO run_logs (source_name, status, started_at)
VALUES ('kora.rw', 'completed', ?);`,
		time.Now().UTC().Add(-100*24*time.Hour).Format(timeFmt))
	require.NoError(t, err)

	_, err = s.InsertRunLog(ctx, "umurimo.com")
	require.NoError(t, err)

	n, err := s.PruneRunLogs(ctx, 90*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	logs, err := s.ListRunLogs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "umurimo.com", logs[0].SourceName)
}
