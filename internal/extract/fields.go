package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FirstText tries an ordered list of selectors under sel and returns the
// first cleaned match of at least minLen runes. Sites shuffle their markup
// often enough that every field wants two or three fallbacks; a field with
// no match resolves to "" and the caller supplies its default.
func FirstText(sel *goquery.Selection, minLen int, selectors ...string) string {
	for _, s := range selectors {
		t := CleanText(sel.Find(s).First().Text())
		if len([]rune(t)) >= minLen && t != "" {
			return t
		}
	}
	return ""
}

// FirstAttr is FirstText for attributes, typically href on the first
// matching anchor.
func FirstAttr(sel *goquery.Selection, attr string, selectors ...string) string {
	for _, s := range selectors {
		if v, ok := sel.Find(s).First().Attr(attr); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

// CleanText collapses whitespace runs and non-breaking spaces.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

// AbsoluteURL resolves href against base when href is site-relative.
// Protocol-relative hrefs ("//cdn.example.org/x") take base's scheme.
func AbsoluteURL(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		if scheme, _, ok := strings.Cut(base, "://"); ok {
			return scheme + ":" + href
		}
		return "https:" + href
	}
	if strings.HasPrefix(href, "/") {
		return strings.TrimSuffix(base, "/") + href
	}
	return strings.TrimSuffix(base, "/") + "/" + href
}
