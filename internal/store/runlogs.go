package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"akazi-engine/internal/domain"
)

// InsertRunLog opens a status=started row and returns its id for the later
// completion update.
func (s *Store) InsertRunLog(ctx context.Context, sourceName string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO run_logs (source_name, status, started_at)
VALUES (?, ?, ?);`,
		sourceName, domain.RunStarted, time.Now().UTC().Format(timeFmt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run log: %w", err)
	}
	return res.LastInsertId()
}

// RunOutcome is the single mutation a run log row receives after creation.
type RunOutcome struct {
	Status       string
	JobsFound    int
	JobsAdded    int
	JobsUpdated  int
	ErrorMessage string
}

func (s *Store) UpdateRunLog(ctx context.Context, id int64, out RunOutcome) error {
	var errMsg any
	if out.ErrorMessage != "" {
		errMsg = out.ErrorMessage
	}
	_, err := s.db.ExecContext(ctx, `
UPDATE run_logs
SET status = ?, jobs_found = ?, jobs_added = ?, jobs_updated = ?,
    error_message = ?, completed_at = ?
WHERE id = ?;`,
		out.Status, out.JobsFound, out.JobsAdded, out.JobsUpdated,
		errMsg, time.Now().UTC().Format(timeFmt), id,
	)
	if err != nil {
		return fmt.Errorf("update run log: %w", err)
	}
	return nil
}

func (s *Store) ListRunLogs(ctx context.Context, limit int) ([]domain.RunLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
SELECT id, source_name, status, jobs_found, jobs_added, jobs_updated,
       error_message, started_at, completed_at
FROM run_logs
ORDER BY started_at DESC, id DESC
LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RunLog
	for rows.Next() {
		var rl domain.RunLog
		var errMsg, completed sql.NullString
		var started string
		if err := rows.Scan(
			&rl.ID, &rl.SourceName, &rl.Status, &rl.JobsFound, &rl.JobsAdded,
			&rl.JobsUpdated, &errMsg, &started, &completed,
		); err != nil {
			return nil, err
		}
		rl.ErrorMessage = errMsg.String
		rl.StartedAt, _ = time.Parse(timeFmt, started)
		if completed.Valid {
			if t, err := time.Parse(timeFmt, completed.String); err == nil {
				rl.CompletedAt = &t
			}
		}
		out = append(out, rl)
	}
	return out, rows.Err()
}

// PruneRunLogs drops audit rows older than the cutoff. Jobs are never
// deleted here; the audit trail is the only thing that ages out.
func (s *Store) PruneRunLogs(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan).Format(timeFmt)
	res, err := s.db.ExecContext(ctx, `
DELETE FROM run_logs WHERE started_at < ?;`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("prune run logs: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}
