// Package mailbox turns job-alert emails into postings. Boards that only
// announce vacancies by newsletter still land in the same pipeline as the
// scraped sites: one message with a matching subject becomes one RawPosting
// pointing at the first posting link in the body.
package mailbox

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/mail"
	"regexp"
	"strings"

	"github.com/emersion/go-imap/v2"

	"akazi-engine/internal/config"
	"akazi-engine/internal/domain"
	"akazi-engine/internal/extract"
	"akazi-engine/internal/secrets"
)

const sourceName = "email"

type Extractor struct {
	Cfg config.Config
}

func (e *Extractor) Name() string { return sourceName }

func (e *Extractor) Extract(ctx context.Context) ([]domain.RawPosting, error) {
	cfg := e.Cfg.Email
	if !cfg.Enabled {
		return nil, nil
	}

	password, err := secrets.GetIMAPPassword(secrets.IMAPAccount(e.Cfg))
	if err != nil {
		return nil, err
	}

	addr := fmt.Sprintf("%s:%d", cfg.IMAPHost, cfg.IMAPPort)
	c, err := dialAndLogin(ctx, addr, cfg.Username, password)
	if err != nil {
		return nil, err
	}
	defer logoutAndClose(c)

	msgs, err := fetchUnseen(ctx, c, cfg.Mailbox, 50)
	if err != nil {
		return nil, err
	}

	var out []domain.RawPosting
	var used []imap.UID
	for _, m := range msgs {
		if !subjectMatches(m.Subject, cfg.SubjectAny) {
			continue
		}
		p, ok := postingFromMessage(m)
		if !ok {
			continue
		}
		out = append(out, p)
		used = append(used, m.UID)
	}

	if err := markSeen(c, used); err != nil {
		log.Printf("[email] mark seen: %v", err)
	}
	return out, nil
}

func subjectMatches(subject string, any []string) bool {
	if len(any) == 0 {
		return false
	}
	s := strings.ToLower(subject)
	for _, needle := range any {
		if strings.Contains(s, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

var linkRe = regexp.MustCompile(`https?://[^\s"'<>\)\]]+`)

func postingFromMessage(m message) (domain.RawPosting, bool) {
	title := cleanSubject(m.Subject)
	url := firstPostingLink(m.Raw)
	if title == "" || url == "" {
		return domain.RawPosting{}, false
	}

	return domain.RawPosting{
		Title:   title,
		Company: companyFromAddr(m.From),
		URL:     url,
		Source:  sourceName,
		Snippet: "",
	}, true
}

// cleanSubject strips the usual alert prefixes so "New job: Accountant"
// ingests as "Accountant".
func cleanSubject(s string) string {
	s = extract.CleanText(s)
	prefixes := []string{"new job:", "job alert:", "vacancy:", "fwd:", "re:"}
	for stripped := true; stripped; {
		stripped = false
		for _, prefix := range prefixes {
			if len(s) > len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
				s = strings.TrimSpace(s[len(prefix):])
				stripped = true
			}
		}
	}
	return s
}

// firstPostingLink scans the body text for the first link that is not an
// unsubscribe or tracking-pixel URL.
func firstPostingLink(raw []byte) string {
	body := bodyText(raw)
	for _, u := range linkRe.FindAllString(body, 20) {
		low := strings.ToLower(u)
		if strings.Contains(low, "unsubscribe") || strings.Contains(low, "mailtrack") ||
			strings.Contains(low, "list-manage") {
			continue
		}
		return strings.TrimRight(u, ".,;")
	}
	return ""
}

func bodyText(raw []byte) string {
	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	if err != nil {
		return string(raw)
	}
	b, err := io.ReadAll(msg.Body)
	if err != nil {
		return string(raw)
	}
	return string(b)
}

func companyFromAddr(from string) string {
	at := strings.IndexByte(from, '@')
	if at < 0 {
		return domain.CompanyUnknown
	}
	host := from[at+1:]
	host = strings.TrimPrefix(host, "mail.")
	host = strings.TrimPrefix(host, "jobs.")
	if i := strings.IndexByte(host, '.'); i > 0 {
		host = host[:i]
	}
	if host == "" {
		return domain.CompanyUnknown
	}
	return strings.ToUpper(host[:1]) + host[1:]
}
