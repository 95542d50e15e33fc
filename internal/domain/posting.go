package domain

import "time"

// CompanyUnknown is the sentinel used when a source never names the employer.
const CompanyUnknown = "Not specified"

// RawPosting is one listing as an extractor saw it. Deadline is whatever
// string the site printed; nothing is validated here beyond title and URL.
type RawPosting struct {
	Title    string
	Company  string
	Location string
	Deadline string // source-format text, may be empty
	URL      string // absolute; identity key downstream
	Source   string // extractor name
	Snippet  string
}

// Valid reports whether the posting may leave an extractor.
func (p RawPosting) Valid() bool {
	return p.Title != "" && p.URL != ""
}

// MergedPosting is a dedup survivor with its deadline resolved.
// ParsedDeadline is nil when no pattern matched the source text.
type MergedPosting struct {
	RawPosting
	ParsedDeadline *time.Time
}
