package goquery_test

import (
	"testing"

	"github.com/fwojciec/jobsnap"
	"github.com/fwojciec/jobsnap/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("linkedin top card", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 class="jobs-unified-top-card__job-title">Senior Go Engineer</h1>
<div class="jobs-unified-top-card__company-name"><a href="/company/acme">Acme Corp</a></div>
<span class="jobs-unified-top-card__bullet">Berlin, Germany</span>
<div id="job-details"><p>Design and build services.</p><button>Show more</button></div>
</body></html>`

		e := goquery.NewExtractor(nil)
		got, err := e.Extract(jobsnap.SiteLinkedIn, html)

		require.NoError(t, err)
		assert.Equal(t, "Senior Go Engineer", got.Title)
		assert.Equal(t, "Acme Corp", got.Company)
		assert.Equal(t, "Berlin, Germany", got.Location)
		assert.Equal(t, "Design and build services.", got.Description)
		assert.NotContains(t, got.DescriptionHTML, "Show more")
	})

	t.Run("linkedin subline split on mis-decoded middle dot", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Platform Engineer</h1>
<div class="top-card-layout__first-subline">Acme Corp 路 Remote</div>
</body></html>`

		e := goquery.NewExtractor(nil)
		got, err := e.Extract(jobsnap.SiteLinkedIn, html)

		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", got.Company)
		assert.Equal(t, "Remote", got.Location)
	})

	t.Run("linkedin location skips posting age", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Platform Engineer</h1>
<span class="jobs-unified-top-card__bullet">2 weeks ago</span>
<span class="jobs-unified-top-card__workplace-type">Hybrid</span>
</body></html>`

		e := goquery.NewExtractor(nil)
		got, err := e.Extract(jobsnap.SiteLinkedIn, html)

		require.NoError(t, err)
		assert.Equal(t, "Hybrid", got.Location)
	})

	t.Run("glassdoor strips employer rating", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1 data-test="jobTitle">Data Engineer</h1>
<div data-test="employer-name">Acme Inc. 4.5</div>
<div data-test="location">· London</div>
<div class="jobDescriptionContent"><p>Own the pipelines.</p></div>
</body></html>`

		e := goquery.NewExtractor(nil)
		got, err := e.Extract(jobsnap.SiteGlassdoor, html)

		require.NoError(t, err)
		assert.Equal(t, "Data Engineer", got.Title)
		assert.Equal(t, "Acme Inc.", got.Company)
		assert.Equal(t, "London", got.Location)
		assert.Equal(t, "Own the pipelines.", got.Description)
	})

	t.Run("bdjobs strips deadline and company label", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Backend Developer Application Deadline: 30 Jun 2024</h1>
<div class="company-name">Company Info: Acme Ltd</div>
<div class="job-location">Dhaka</div>
<div class="job-details"><p>Maintain the API.</p></div>
</body></html>`

		e := goquery.NewExtractor(nil)
		got, err := e.Extract(jobsnap.SiteBdjobs, html)

		require.NoError(t, err)
		assert.Equal(t, "Backend Developer", got.Title)
		assert.Equal(t, "Acme Ltd", got.Company)
		assert.Equal(t, "Dhaka", got.Location)
		assert.Equal(t, "Maintain the API.", got.Description)
	})

	t.Run("naukri header", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="jd-header-title">Java Developer</div>
<div class="jd-header-comp-name"><a href="/acme">Acme Tech</a><span>3.9</span></div>
<div class="jd-header-loc">Bengaluru</div>
<div class="job-desc">Write Java.</div>
</body></html>`

		e := goquery.NewExtractor(nil)
		got, err := e.Extract(jobsnap.SiteNaukri, html)

		require.NoError(t, err)
		assert.Equal(t, "Java Developer", got.Title)
		assert.Equal(t, "Acme Tech", got.Company)
		assert.Equal(t, "Bengaluru", got.Location)
		assert.Equal(t, "Write Java.", got.Description)
	})

	t.Run("generic page uses semantic elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<h1>Go Developer</h1>
<span class="company-name">Initech</span>
<span class="job-location">Austin, TX</span>
<article><p>Build internal tools.</p><script>track()</script></article>
</body></html>`

		e := goquery.NewExtractor(nil)
		got, err := e.Extract(jobsnap.SiteGeneric, html)

		require.NoError(t, err)
		assert.Equal(t, "Go Developer", got.Title)
		assert.Equal(t, "Initech", got.Company)
		assert.Equal(t, "Austin, TX", got.Location)
		assert.Equal(t, "Build internal tools.", got.Description)
	})

	t.Run("unknown site falls back to generic strategy", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor(nil)
		got, err := e.Extract(jobsnap.Site("monster"), `<html><body><h2>Fallback Title</h2></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, "Fallback Title", got.Title)
	})

	t.Run("missing title leaves field empty", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor(nil)
		got, err := e.Extract(jobsnap.SiteLinkedIn, `<html><body><p>nothing here</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, got.Title)
	})
}

func TestExtractor_VisibleText(t *testing.T) {
	t.Parallel()

	t.Run("returns noise-filtered body text", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Page</title></head><body>
<nav>Menu</nav><p>Hello</p><script>x()</script><p>World</p>
</body></html>`

		e := goquery.NewExtractor(nil)
		got, err := e.VisibleText(html)

		require.NoError(t, err)
		assert.Equal(t, "Hello World", got)
	})

	t.Run("returns empty text for empty page", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewExtractor(nil)
		got, err := e.VisibleText("")

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
