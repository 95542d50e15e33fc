package mucuruzi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akazi-engine/internal/domain"
	"akazi-engine/internal/orchestrate"
)

func TestSplitTitle(t *testing.T) {
	tests := []struct {
		in          string
		wantTitle   string
		wantCompany string
	}{
		{"Finance Officer at Acme Ltd", "Finance Officer", "Acme Ltd"},
		{"Driver at Mucuruzi Deliveries at Kigali", "Driver at Mucuruzi Deliveries", "Kigali"},
		{"Plain vacancy title", "Plain vacancy title", domain.CompanyUnknown},
		{"at ", "at ", domain.CompanyUnknown},
	}
	for _, tt := range tests {
		title, company := splitTitle(tt.in)
		assert.Equal(t, tt.wantTitle, title, "input %q", tt.in)
		assert.Equal(t, tt.wantCompany, company, "input %q", tt.in)
	}
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "Deadline: 15 September 2026",
		stripTags("<p>Deadline: <strong>15 September 2026</strong></p>"))
	assert.Equal(t, "A & B", stripTags("A &amp; B"))
}

func TestDeadlineOf(t *testing.T) {
	p := wpPost{}
	p.Excerpt.Rendered = "<p>Great role. Deadline: 15 September 2026.</p>"
	assert.Equal(t, "15 September 2026", deadlineOf(p))

	p.Excerpt.Rendered = "<p>No closing date mentioned.</p>"
	assert.Equal(t, "", deadlineOf(p))
}

// The excerpt form this site actually prints must survive all the way to a
// parsed date, sentence punctuation included.
func TestDeadlineOfParses(t *testing.T) {
	p := wpPost{}
	p.Excerpt.Rendered = "<p>Great role. Deadline: 15 September 2026.</p>"

	parsed := orchestrate.ParseDeadline(deadlineOf(p))
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), *parsed)
}
