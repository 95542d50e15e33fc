// Package kora scrapes kora.rw. Listing cards carry title, employer and a
// labelled deadline line; detail pages are not fetched, the card snippet is
// all the downstream classifier needs.
package kora

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"akazi-engine/internal/domain"
	"akazi-engine/internal/extract"
)

const (
	sourceName = "kora.rw"
	baseURL    = "https://kora.rw"
	listPath   = "/jobs"
)

type Scraper struct {
	c *extract.Client
}

func New(c *extract.Client) *Scraper {
	return &Scraper{c: c}
}

func (s *Scraper) Name() string { return sourceName }

func (s *Scraper) Extract(ctx context.Context) ([]domain.RawPosting, error) {
	doc, err := s.c.GetDocument(ctx, baseURL+listPath)
	if err != nil {
		return nil, fmt.Errorf("kora list: %w", err)
	}
	return parseList(doc), nil
}

func parseList(doc *goquery.Document) []domain.RawPosting {
	var out []domain.RawPosting

	doc.Find(".job-card, .job-listing, li.job-item, div[class*='job-card']").Each(func(_ int, card *goquery.Selection) {
		title := extract.FirstText(card, 3,
			".job-title a", "h3 a", "h2 a", "a[href*='/job']")
		if title == "" {
			return
		}

		href := extract.FirstAttr(card, "href",
			".job-title a", "h3 a", "h2 a", "a[href*='/job']")
		url := extract.AbsoluteURL(baseURL, href)
		if url == "" {
			return
		}

		company := extract.FirstText(card, 2,
			".company-name", ".employer", ".job-company", "h4")
		if company == "" {
			company = domain.CompanyUnknown
		}

		out = append(out, domain.RawPosting{
			Title:    title,
			Company:  company,
			Location: extract.FirstText(card, 2, ".job-location", ".location", "span[class*='location']"),
			Deadline: extract.FirstText(card, 4, ".job-deadline", ".deadline", "span[class*='deadline']"),
			URL:      url,
			Source:   sourceName,
			Snippet:  extract.FirstText(card, 10, ".job-description", ".summary", "p"),
		})
	})

	return out
}
