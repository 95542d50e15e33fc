// Package classify maps posting text onto a job category and an employment
// type with ordered keyword tables. First matching rule wins; everything is
// case-insensitive substring matching, so the functions are total over any
// input including the empty string.
package classify

import "strings"

const (
	CategoryOther = "Other"

	TypeFullTime   = "Full-time"
	TypePartTime   = "Part-time"
	TypeContract   = "Contract"
	TypeInternship = "Internship"
)

type rule struct {
	label string
	any   []string
}

var categoryRules = []rule{
	{"Technology", []string{"software", "developer", "programmer", "tech", "data analyst"}},
	{"Marketing", []string{"marketing", "sales", "communication", "brand"}},
	{"Finance", []string{"finance", "accountant", "accounting", "audit", "bank"}},
	{"Healthcare", []string{"health", "medical", "nurse", "doctor", "clinic", "pharma"}},
	{"Education", []string{"teacher", "education", "lecturer", "tutor", "trainer"}},
	{"Engineering", []string{"engineer", "civil", "mechanical", "electrical", "construction"}},
	{"Management", []string{"manager", "director", "coordinator", "supervisor", "officer"}},
	{"Agriculture", []string{"agriculture", "agronom", "farm", "livestock"}},
	{"Legal", []string{"legal", "lawyer", "advocate", "compliance"}},
}

var typeRules = []rule{
	{TypeInternship, []string{"intern"}},
	{TypePartTime, []string{"part-time", "part time"}},
	{TypeContract, []string{"contract", "temporary", "freelance", "consultan"}},
}

// Category buckets a posting title. Unmatched titles land in "Other".
func Category(title string) string {
	t := strings.ToLower(title)
	for _, r := range categoryRules {
		for _, needle := range r.any {
			if strings.Contains(t, needle) {
				return r.label
			}
		}
	}
	return CategoryOther
}

// EmploymentType inspects title and snippet together, so "6-month internship"
// buried in the snippet still wins over the Full-time default.
func EmploymentType(title, snippet string) string {
	t := strings.ToLower(title + " " + snippet)
	for _, r := range typeRules {
		for _, needle := range r.any {
			if strings.Contains(t, needle) {
				return r.label
			}
		}
	}
	return TypeFullTime
}
