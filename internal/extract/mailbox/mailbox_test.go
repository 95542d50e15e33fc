package mailbox

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"akazi-engine/internal/domain"
)

func TestSubjectMatches(t *testing.T) {
	any := []string{"job", "vacancy"}

	assert.True(t, subjectMatches("New JOB: Accountant", any))
	assert.True(t, subjectMatches("Vacancy announcement", any))
	assert.False(t, subjectMatches("Weekly newsletter", any))
	assert.False(t, subjectMatches("New job: Accountant", nil))
}

func TestCleanSubject(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"New job: Accountant", "Accountant"},
		{"Fwd: Vacancy: Field Officer", "Field Officer"},
		{"  Driver   wanted ", "Driver wanted"},
		{"vacancy:", "vacancy:"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cleanSubject(tt.in), "input %q", tt.in)
	}
}

func TestFirstPostingLink(t *testing.T) {
	raw := []byte("Subject: x\r\n\r\n" +
		"Click https://example.org/unsubscribe/123 to opt out.\r\n" +
		"Apply here: https://jobs.example.org/posting/42.\r\n")
	assert.Equal(t, "https://jobs.example.org/posting/42", firstPostingLink(raw))

	assert.Equal(t, "", firstPostingLink([]byte("Subject: x\r\n\r\nno links here\r\n")))
}

func TestPostingFromMessage(t *testing.T) {
	m := message{
		Subject: "Job alert: Nurse",
		From:    "alerts@jobs.example.org",
		Raw:     []byte("Subject: x\r\n\r\nApply: https://example.org/jobs/7\r\n"),
	}

	p, ok := postingFromMessage(m)
	assert.True(t, ok)
	assert.Equal(t, "Nurse", p.Title)
	assert.Equal(t, "Example", p.Company)
	assert.Equal(t, "https://example.org/jobs/7", p.URL)
	assert.Equal(t, sourceName, p.Source)

	_, ok = postingFromMessage(message{Subject: "Job alert: Nurse", Raw: []byte("no link")})
	assert.False(t, ok)
}

func TestCompanyFromAddr(t *testing.T) {
	assert.Equal(t, "Acme", companyFromAddr("hr@acme.rw"))
	assert.Equal(t, "Acme", companyFromAddr("noreply@mail.acme.com"))
	assert.Equal(t, domain.CompanyUnknown, companyFromAddr("not-an-address"))
}
