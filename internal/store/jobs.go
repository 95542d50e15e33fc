package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"akazi-engine/internal/domain"
)

const timeFmt = time.RFC3339

// FindJobByURL returns nil (not an error) when no job has the URL.
func (s *Store) FindJobByURL(ctx context.Context, url string) (*domain.Job, error) {
	row := s.db.QueryRowContext(ctx, `
SELECT id, title, company, location, description, job_type, category,
       posted_date, source_url, source_name, created_at, updated_at
FROM jobs WHERE source_url = ? LIMIT 1;`, url)

	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find job by url: %w", err)
	}
	return j, nil
}

func (s *Store) InsertJob(ctx context.Context, j domain.Job) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
INSERT INTO jobs (title, company, location, description, job_type, category,
                  posted_date, source_url, source_name, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`,
		j.Title, j.Company, j.Location, j.Description, j.JobType, j.Category,
		fmtDate(j.PostedDate), j.SourceURL, j.SourceName,
		j.CreatedAt.UTC().Format(timeFmt), j.UpdatedAt.UTC().Format(timeFmt),
	)
	if err != nil {
		return 0, fmt.Errorf("insert job: %w", err)
	}
	return res.LastInsertId()
}

// UpdateJob replaces every mutable field of the row; identity (id,
// source_url) and created_at stay put.
func (s *Store) UpdateJob(ctx context.Context, id int64, j domain.Job) error {
	_, err := s.db.ExecContext(ctx, `
UPDATE jobs
SET title = ?, company = ?, location = ?, description = ?, job_type = ?,
    category = ?, posted_date = ?, source_name = ?, updated_at = ?
WHERE id = ?;`,
		j.Title, j.Company, j.Location, j.Description, j.JobType,
		j.Category, fmtDate(j.PostedDate), j.SourceName,
		j.UpdatedAt.UTC().Format(timeFmt), id,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

type ListJobsOpts struct {
	Category string
	Source   string
	Limit    int
}

func (s *Store) ListJobs(ctx context.Context, opts ListJobsOpts) ([]domain.Job, error) {
	if opts.Limit <= 0 || opts.Limit > 2000 {
		opts.Limit = 200
	}

	query := `
SELECT id, title, company, location, description, job_type, category,
       posted_date, source_url, source_name, created_at, updated_at
FROM jobs WHERE 1=1`
	var args []any
	if opts.Category != "" {
		query += " AND category = ?"
		args = append(args, opts.Category)
	}
	if opts.Source != "" {
		query += " AND source_name = ?"
		args = append(args, opts.Source)
	}
	query += " ORDER BY updated_at DESC LIMIT ?;"
	args = append(args, opts.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(r rowScanner) (*domain.Job, error) {
	var j domain.Job
	var posted sql.NullString
	var created, updated string
	if err := r.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Description,
		&j.JobType, &j.Category, &posted, &j.SourceURL, &j.SourceName,
		&created, &updated,
	); err != nil {
		return nil, err
	}
	if posted.Valid && posted.String != "" {
		if t, err := time.Parse(timeFmt, posted.String); err == nil {
			j.PostedDate = &t
		}
	}
	j.CreatedAt, _ = time.Parse(timeFmt, created)
	j.UpdatedAt, _ = time.Parse(timeFmt, updated)
	return &j, nil
}

func fmtDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(timeFmt)
}
