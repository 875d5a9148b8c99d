//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/jobsnap"
	"github.com/fwojciec/jobsnap/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHTML(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBrowser_Open_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, `<!DOCTYPE html>
<html><body>
<h1 id="title">Loading...</h1>
<script>document.getElementById('title').textContent = 'Senior Go Engineer';</script>
</body></html>`)

	browser, err := rod.NewBrowser()
	require.NoError(t, err)
	defer browser.Close()

	ctx := context.Background()
	tab, err := browser.Open(ctx, srv.URL)
	require.NoError(t, err)
	defer tab.Close()

	html, err := tab.HTML(ctx)

	require.NoError(t, err)
	assert.Contains(t, html, "Senior Go Engineer")
	assert.NotContains(t, html, "Loading...")
}

func TestTab_Materialize_RendersLazyContent(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, `<!DOCTYPE html>
<html><body style="height: 5000px">
<div id="lazy"></div>
<script>
window.addEventListener('scroll', () => {
  document.getElementById('lazy').textContent = 'Loaded on scroll';
}, { once: true });
</script>
</body></html>`)

	browser, err := rod.NewBrowser(rod.WithLazyLoad(rod.LazyLoadConfig{
		Steps:    3,
		StepPx:   300,
		Interval: 50 * time.Millisecond,
		Settle:   50 * time.Millisecond,
	}))
	require.NoError(t, err)
	defer browser.Close()

	ctx := context.Background()
	tab, err := browser.Open(ctx, srv.URL)
	require.NoError(t, err)
	defer tab.Close()

	require.NoError(t, tab.Materialize(ctx))
	html, err := tab.HTML(ctx)

	require.NoError(t, err)
	assert.Contains(t, html, "Loaded on scroll")
}

func TestTab_Selection_ReturnsSelectedText(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, `<!DOCTYPE html>
<html><body>
<p id="d">Build and run data pipelines.</p>
<script>
const range = document.createRange();
range.selectNodeContents(document.getElementById('d'));
window.getSelection().addRange(range);
</script>
</body></html>`)

	browser, err := rod.NewBrowser()
	require.NoError(t, err)
	defer browser.Close()

	ctx := context.Background()
	tab, err := browser.Open(ctx, srv.URL)
	require.NoError(t, err)
	defer tab.Close()

	got, err := tab.Selection(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Build and run data pipelines.", got)
}

func TestBrowser_Open_ContextCancellation(t *testing.T) {
	t.Parallel()

	browser, err := rod.NewBrowser()
	require.NoError(t, err)
	defer browser.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = browser.Open(ctx, "http://example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBrowser_Open_AfterClose_ReturnsError(t *testing.T) {
	t.Parallel()

	browser, err := rod.NewBrowser()
	require.NoError(t, err)
	require.NoError(t, browser.Close())

	_, err = browser.Open(context.Background(), "http://example.com")

	require.Error(t, err)
	assert.Equal(t, jobsnap.EINVALID, jobsnap.ErrorCode(err))
	assert.Contains(t, jobsnap.ErrorMessage(err), "closed")
}
