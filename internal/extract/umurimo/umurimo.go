// Package umurimo scrapes umurimo.com. The listing page only shows titles
// and employers; deadline and snippet live on the detail page, so each card
// gets hydrated with a second fetch through the shared rate limiter.
package umurimo

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"akazi-engine/internal/domain"
	"akazi-engine/internal/extract"
)

const (
	sourceName = "umurimo.com"
	baseURL    = "https://umurimo.com"
	listPath   = "/jobs"

	// hydration is best-effort and bounded; a huge listing page should not
	// turn one run into hundreds of detail fetches
	maxHydrate = 40
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
		return nil, fmt.Errorf("umurimo list: %w", err)
	}

	out := parseList(doc)

	for i := range out {
		if i >= maxHydrate {
			break
		}
		// hydrate errors keep the minimal card entry
		_ = s.hydrate(ctx, &out[i])
	}
	return out, nil
}

func parseList(doc *goquery.Document) []domain.RawPosting {
	var out []domain.RawPosting

	doc.Find(".job, .vacancy, article[class*='job'], .listing-item").Each(func(_ int, card *goquery.Selection) {
		title := extract.FirstText(card, 3,
			"h2 a", "h3 a", ".title a", "a[href*='/job/']")
		if title == "" {
			return
		}

		href := extract.FirstAttr(card, "href",
			"h2 a", "h3 a", ".title a", "a[href*='/job/']")
		url := extract.AbsoluteURL(baseURL, href)
		if url == "" {
			return
		}

		company := extract.FirstText(card, 2, ".company", ".employer", "h5")
		if company == "" {
			company = domain.CompanyUnknown
		}

		out = append(out, domain.RawPosting{
			Title:    title,
			Company:  company,
			Location: extract.FirstText(card, 2, ".location", "span[class*='location']"),
			URL:      url,
			Source:   sourceName,
		})
	})

	return out
}

func (s *Scraper) hydrate(ctx context.Context, p *domain.RawPosting) error {
	doc, err := s.c.GetDocument(ctx, p.URL)
	if err != nil {
		return err
	}

	if p.Deadline == "" {
		p.Deadline = extract.FirstText(doc.Selection, 4,
			".deadline", ".job-deadline", "span[class*='deadline']", "time")
	}
	if p.Snippet == "" {
		p.Snippet = extract.FirstText(doc.Selection, 10,
			".job-description p", ".description p", "article p")
	}
	if p.Location == "" {
		p.Location = extract.FirstText(doc.Selection, 2, ".location", "span[class*='location']")
	}
	return nil
}
