package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestFirstTextFallsThroughSelectors(t *testing.T) {
	doc := docFrom(t, `
<div class="card">
  <span class="empty"></span>
  <h3 class="headline">  Store &nbsp; Manager  </h3>
  <p class="alt">Alt title</p>
</div>`)

	got := FirstText(doc.Selection, 2, ".missing", ".empty", ".headline", ".alt")
	assert.Equal(t, "Store Manager", got, "first non-empty candidate wins, cleaned")
}

func TestFirstTextMinLength(t *testing.T) {
	doc := docFrom(t, `<div><span class="a">X</span><span class="b">Kigali</span></div>`)

	assert.Equal(t, "Kigali", FirstText(doc.Selection, 2, ".a", ".b"),
		"too-short matches are skipped")
	assert.Equal(t, "X", FirstText(doc.Selection, 1, ".a", ".b"))
	assert.Equal(t, "", FirstText(doc.Selection, 2, ".a"))
}

func TestFirstAttr(t *testing.T) {
	doc := docFrom(t, `<div><a class="x">no href</a><a class="y" href=" /job/1 ">go</a></div>`)

	assert.Equal(t, "/job/1", FirstAttr(doc.Selection, "href", ".x", ".y"))
	assert.Equal(t, "", FirstAttr(doc.Selection, "href", ".x"))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("  a\n\tb  c  "))
	assert.Equal(t, "", CleanText("  \n "))
}

func TestAbsoluteURL(t *testing.T) {
	assert.Equal(t, "https://kora.rw/job/1", AbsoluteURL("https://kora.rw", "/job/1"))
	assert.Equal(t, "https://kora.rw/job/1", AbsoluteURL("https://kora.rw/", "job/1"))
	assert.Equal(t, "https://other.example/x", AbsoluteURL("https://kora.rw", "https://other.example/x"))
	assert.Equal(t, "https://cdn.example/x", AbsoluteURL("https://kora.rw", "//cdn.example/x"),
		"protocol-relative hrefs take the base scheme, not the base host")
	assert.Equal(t, "http://cdn.example/x", AbsoluteURL("http://kora.rw", "//cdn.example/x"))
	assert.Equal(t, "", AbsoluteURL("https://kora.rw", "  "))
}
