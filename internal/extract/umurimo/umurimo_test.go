package umurimo

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"akazi-engine/internal/domain"
)

const listPage = `
<html><body>
  <article class="job-listing-card">
    <h2><a href="/job/accountant-123">Accountant</a></h2>
    <div class="company">Bank of Kigali</div>
    <span class="location">Kigali</span>
  </article>
  <div class="vacancy">
    <h3><a href="https://umurimo.com/job/driver-9">Driver</a></h3>
  </div>
  <div class="vacancy">
    <h3><a href="/job/no-title"></a></h3>
  </div>
</body></html>`

func TestParseList(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listPage))
	require.NoError(t, err)

	got := parseList(doc)
	require.Len(t, got, 2)

	assert.Equal(t, "Accountant", got[0].Title)
	assert.Equal(t, "Bank of Kigali", got[0].Company)
	assert.Equal(t, "Kigali", got[0].Location)
	assert.Equal(t, "https://umurimo.com/job/accountant-123", got[0].URL)
	assert.Equal(t, sourceName, got[0].Source)

	assert.Equal(t, "Driver", got[1].Title)
	assert.Equal(t, domain.CompanyUnknown, got[1].Company)
	assert.Equal(t, "https://umurimo.com/job/driver-9", got[1].URL)
}
