package domain

import "time"

// Job is the persisted record for one source URL. SourceURL is the identity:
// later sightings of the same URL overwrite the mutable fields and bump
// UpdatedAt, never the URL or CreatedAt.
type Job struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	Description string     `json:"description"`
	JobType     string     `json:"jobType"`  // Full-time / Part-time / Contract / Internship
	Category    string     `json:"category"` // classifier output
	PostedDate  *time.Time `json:"postedDate,omitempty"`
	SourceURL   string     `json:"sourceURL"`
	SourceName  string     `json:"sourceName"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// RunLog statuses. A row is created as started and flipped exactly once.
const (
	RunStarted   = "started"
	RunCompleted = "completed"
	RunFailed    = "failed"
)

// RunLog records one source's ingestion attempt within one scheduler pass.
type RunLog struct {
	ID           int64      `json:"id"`
	SourceName   string     `json:"sourceName"`
	Status       string     `json:"status"`
	JobsFound    int        `json:"jobsFound"`
	JobsAdded    int        `json:"jobsAdded"`
	JobsUpdated  int        `json:"jobsUpdated"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	StartedAt    time.Time  `json:"startedAt"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}
