package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobsnap/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, html string) *gq.Document {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestVisibleText(t *testing.T) {
	t.Parallel()

	t.Run("returns empty string for empty selection", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<div>text</div>`)

		assert.Empty(t, goquery.VisibleText(doc.Find(".missing")))
	})

	t.Run("excludes script and style content", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<div id="d"><p>Keep</p><script>var secret = 1;</script><style>p{color:red}</style></div>`)

		got := goquery.VisibleText(doc.Find("#d"))

		assert.Equal(t, "Keep", got)
	})

	t.Run("removes navigation, buttons and forms", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<div id="d"><nav>Menu</nav><p>Role summary</p><button>Save</button><form><input value="q">Search</form></div>`)

		got := goquery.VisibleText(doc.Find("#d"))

		assert.Equal(t, "Role summary", got)
	})

	t.Run("removes elements with noise class fragments", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<div id="d"><div class="cookie-consent">Accept cookies</div><p>Body</p><div class="social-share-bar">Share</div><div class="ad-slot">Buy now</div></div>`)

		got := goquery.VisibleText(doc.Find("#d"))

		assert.Equal(t, "Body", got)
	})

	t.Run("removes apply links", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<div id="d">Details <a href="/jobs/1/apply">Apply now</a></div>`)

		got := goquery.VisibleText(doc.Find("#d"))

		assert.Equal(t, "Details", got)
	})

	t.Run("skips elements hidden by inline style", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<div id="d"><span style="display: none">secret</span><span style="visibility:HIDDEN">also</span>shown</div>`)

		got := goquery.VisibleText(doc.Find("#d"))

		assert.Equal(t, "shown", got)
	})

	t.Run("separates block elements", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<div id="d"><p>One</p><p>Two</p><ul><li>Three</li><li>Four<br>Five</li></ul></div>`)

		got := goquery.VisibleText(doc.Find("#d"))

		assert.Equal(t, "One Two Three Four Five", got)
	})

	t.Run("falls back to text content when nothing renders", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<div id="d"><span hidden>only text</span></div>`)

		got := goquery.VisibleText(doc.Find("#d"))

		assert.Equal(t, "only text", got)
	})

	t.Run("does not modify the source document", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<div id="d"><p>Keep</p><script>x()</script><nav>Menu</nav></div>`)

		_ = goquery.VisibleText(doc.Find("#d"))

		assert.Equal(t, 1, doc.Find("#d script").Length())
		assert.Equal(t, 1, doc.Find("#d nav").Length())
	})
}

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for empty selection", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<p>x</p>`)

		assert.Nil(t, goquery.Clean(doc.Find("article")))
	})

	t.Run("returns a cleaned copy of the first element", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<section><p>A</p><footer>F</footer></section><section><p>B</p></section>`)

		cleaned := goquery.Clean(doc.Find("section"))

		require.NotNil(t, cleaned)
		assert.Equal(t, "A", cleaned.Text())
		assert.Equal(t, 1, doc.Find("footer").Length())
	})
}
