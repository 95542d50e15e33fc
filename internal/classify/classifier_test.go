package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Senior Software Developer", "Technology"},
		{"PROGRAMMER ANALYST", "Technology"},
		{"Marketing and Communications Lead", "Marketing"},
		{"Sales Representative", "Marketing"},
		{"Accountant", "Finance"},
		{"Internal Audit Specialist", "Finance"},
		{"Nurse Midwife", "Healthcare"},
		{"Primary School Teacher", "Education"},
		{"Civil Works Inspector", "Engineering"},
		{"Mechanical Engineer", "Engineering"},
		{"Country Director", "Management"},
		{"Agronomist", "Agriculture"},
		{"Legal Advisor", "Legal"},
		{"Driver", "Other"},
		{"", "Other"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, Category(tt.title))
		})
	}
}

func TestCategoryOrderedFirstMatchWins(t *testing.T) {
	// "software" (Technology) outranks "engineer" (Engineering) because the
	// Technology rules come first
	assert.Equal(t, "Technology", Category("Software Engineer"))
	// "finance" outranks "officer"
	assert.Equal(t, "Finance", Category("Finance Officer"))
}

func TestEmploymentType(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		snippet string
		want    string
	}{
		{"default", "Software Developer", "", TypeFullTime},
		{"empty everything", "", "", TypeFullTime},
		{"intern in title", "Marketing Intern", "", TypeInternship},
		{"intern in snippet", "Senior Software Developer", "6-month internship", TypeInternship},
		{"part-time hyphen", "Cashier (part-time)", "", TypePartTime},
		{"part time spaced", "Part Time Tutor", "", TypePartTime},
		{"contract", "Contract Electrician", "", TypeContract},
		{"temporary", "Cleaner", "temporary position for 3 months", TypeContract},
		{"freelance", "Designer", "freelance engagement", TypeContract},
		{"internship beats contract", "Intern", "temporary contract", TypeInternship},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EmploymentType(tt.title, tt.snippet))
		})
	}
}
