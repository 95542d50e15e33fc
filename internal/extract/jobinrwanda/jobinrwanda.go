// Package jobinrwanda scrapes the job listing at jobinrwanda.com. The site
// is a Drupal build and reshuffles its node markup now and then, so every
// field carries a selector fallback chain.
package jobinrwanda

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"akazi-engine/internal/domain"
	"akazi-engine/internal/extract"
)

const (
	sourceName = "jobinrwanda.com"
	baseURL    = "https://www.jobinrwanda.com"
	listPath   = "/jobs/all"
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
		return nil, fmt.Errorf("jobinrwanda list: %w", err)
	}
	return parseList(doc), nil
}

func parseList(doc *goquery.Document) []domain.RawPosting {
	var out []domain.RawPosting

	doc.Find("article.node--type-job, article[class*='job'], .view-jobs .views-row").Each(func(_ int, card *goquery.Selection) {
		title := extract.FirstText(card, 3,
			"h5 a", "h2 a", ".node__title a", "a[href*='/job/']")
		if title == "" {
			return
		}

		href := extract.FirstAttr(card, "href",
			"h5 a", "h2 a", ".node__title a", "a[href*='/job/']")
		url := extract.AbsoluteURL(baseURL, href)
		if url == "" {
			return
		}

		company := extract.FirstText(card, 2,
			".field--name-field-company", ".company a", "small a", ".employer")
		if company == "" {
			company = domain.CompanyUnknown
		}

		out = append(out, domain.RawPosting{
			Title:    title,
			Company:  company,
			Location: extract.FirstText(card, 2, ".field--name-field-location", ".location"),
			Deadline: extract.FirstText(card, 4, ".field--name-field-deadline", ".deadline", "time"),
			URL:      url,
			Source:   sourceName,
			Snippet:  extract.FirstText(card, 10, ".field--name-body", ".node__content p", "p"),
		})
	})

	return out
}
