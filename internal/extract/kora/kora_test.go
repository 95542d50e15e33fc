package kora

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listHTML = `
<ul>
  <li class="job-item">
    <h3 class="job-title"><a href="/job/software-developer-77">Software Developer</a></h3>
    <div class="company-name">TechCo Rwanda</div>
    <span class="job-location">Kigali, Rwanda</span>
    <span class="job-deadline">30/09/2026</span>
    <p class="job-description">Build and maintain internal web tools.</p>
  </li>
  <li class="job-item">
    <h2><a href="https://kora.rw/job/driver-12">Driver</a></h2>
  </li>
</ul>`

func TestParseList(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listHTML))
	require.NoError(t, err)

	out := parseList(doc)
	require.Len(t, out, 2)

	assert.Equal(t, "Software Developer", out[0].Title)
	assert.Equal(t, "TechCo Rwanda", out[0].Company)
	assert.Equal(t, "Kigali, Rwanda", out[0].Location)
	assert.Equal(t, "30/09/2026", out[0].Deadline)
	assert.Equal(t, "https://kora.rw/job/software-developer-77", out[0].URL)
	assert.Equal(t, "kora.rw", out[0].Source)

	assert.Equal(t, "Driver", out[1].Title)
	assert.Equal(t, "https://kora.rw/job/driver-12", out[1].URL)
}
