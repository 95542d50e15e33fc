package orchestrate

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Deadline strings come in whatever shape the site prints: "Deadline:
// 15-09-2026", "Apply before September 15, 2026", bare "2026-09-15". Parsing
// is best-effort; anything unrecognized resolves to nil, never an error.

var labelPrefixes = []string{
	"deadline",
	"application deadline",
	"apply before",
	"apply by",
	"closing date",
	"closes",
	"due",
}

var layouts = []string{
	"2006-01-02",
	"02-01-2006",
	"2-1-2006",
	"02/01/2006",
	"2/1/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

var (
	dmyRe      = regexp.MustCompile(`(\d{1,2})[-/.](\d{1,2})[-/.](\d{4})`)
	ymdRe      = regexp.MustCompile(`(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})`)
	monthDayRe = regexp.MustCompile(`(?i)(january|february|march|april|may|june|july|august|september|october|november|december)\s+(\d{1,2}),?\s+(\d{4})`)
)

// ParseDeadline resolves free-text deadline strings to a date, or nil when
// no pattern applies.
func ParseDeadline(raw string) *time.Time {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	low := strings.ToLower(s)
	for _, p := range labelPrefixes {
		if strings.HasPrefix(low, p) {
			s = strings.TrimSpace(s[len(p):])
			s = strings.TrimLeft(s, ":- \t")
			break
		}
	}
	// "apply before September 15, 2026." ends mid-sentence on some boards
	s = strings.TrimRight(s, ".,;")
	if s == "" {
		return nil
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	if m := ymdRe.FindStringSubmatch(s); m != nil {
		if t, ok := makeDate(m[1], m[2], m[3]); ok {
			return &t
		}
	}
	if m := dmyRe.FindStringSubmatch(s); m != nil {
		if t, ok := makeDate(m[3], m[2], m[1]); ok {
			return &t
		}
	}
	if m := monthDayRe.FindStringSubmatch(s); m != nil {
		if month, ok := months[strings.ToLower(m[1])]; ok {
			if t, ok := makeDate(m[3], strconv.Itoa(int(month)), m[2]); ok {
				return &t
			}
		}
	}

	return nil
}

var months = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
}

func makeDate(y, mo, d string) (time.Time, bool) {
	year, _ := strconv.Atoi(y)
	month, _ := strconv.Atoi(mo)
	day, _ := strconv.Atoi(d)
	if year < 1970 || month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
