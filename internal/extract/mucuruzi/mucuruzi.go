// Package mucuruzi pulls postings from mucuruzi.com, a WordPress site with
// the standard wp-json REST surface, so no DOM scraping is needed for the
// list.
package mucuruzi

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"akazi-engine/internal/domain"
	"akazi-engine/internal/extract"
)

const (
	sourceName = "mucuruzi.com"
	baseURL    = "https://mucuruzi.com"
	listPath   = "/wp-json/wp/v2/posts?categories=5&per_page=50&_fields=title,link,excerpt,date"
)

type Scraper struct {
	c *extract.Client
}

func New(c *extract.Client) *Scraper {
	return &Scraper{c: c}
}

func (s *Scraper) Name() string { return sourceName }

type wpPost struct {
	Title struct {
		Rendered string `json:"rendered"`
	} `json:"title"`
	Link    string `json:"link"`
	Excerpt struct {
		Rendered string `json:"rendered"`
	} `json:"excerpt"`
	Date string `json:"date"` // "2026-08-30T09:12:44"
}

func (s *Scraper) Extract(ctx context.Context) ([]domain.RawPosting, error) {
	res, err := s.c.Get(ctx, baseURL+listPath)
	if err != nil {
		return nil, fmt.Errorf("mucuruzi list: %w", err)
	}
	defer res.Body.Close()

	var posts []wpPost
	if err := json.NewDecoder(res.Body).Decode(&posts); err != nil {
		return nil, fmt.Errorf("mucuruzi decode: %w", err)
	}

	out := make([]domain.RawPosting, 0, len(posts))
	for _, p := range posts {
		title, company := splitTitle(stripTags(p.Title.Rendered))
		if title == "" || p.Link == "" {
			continue
		}

		out = append(out, domain.RawPosting{
			Title:    title,
			Company:  company,
			Deadline: deadlineOf(p),
			URL:      p.Link,
			Source:   sourceName,
			Snippet:  stripTags(p.Excerpt.Rendered),
		})
	}
	return out, nil
}

var (
	tagRe      = regexp.MustCompile(`<[^>]*>`)
	deadlineRe = regexp.MustCompile(`(?i)deadline[^A-Za-z0-9]*([A-Za-z0-9 ,/.-]+)`)
)

func stripTags(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "&amp;", "&")
	s = strings.ReplaceAll(s, "&#8211;", "-")
	s = strings.ReplaceAll(s, "&#8217;", "'")
	return extract.CleanText(s)
}

// splitTitle handles the site convention "Job title at Employer". Posts
// without the marker keep the whole string as the title.
func splitTitle(s string) (title, company string) {
	company = domain.CompanyUnknown
	if i := strings.LastIndex(s, " at "); i > 0 {
		if c := strings.TrimSpace(s[i+4:]); c != "" {
			return strings.TrimSpace(s[:i]), c
		}
	}
	return s, company
}

// deadlineOf digs a deadline phrase out of the excerpt; posts that never
// mention one contribute no deadline rather than a wrong one. The sentence
// punctuation after the date is not part of the deadline.
func deadlineOf(p wpPost) string {
	if m := deadlineRe.FindStringSubmatch(stripTags(p.Excerpt.Rendered)); m != nil {
		return strings.TrimRight(extract.CleanText(m[1]), ".,;")
	}
	return ""
}
