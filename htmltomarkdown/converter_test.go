package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/jobsnap"
	"github.com/fwojciec/jobsnap/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts description sections", func(t *testing.T) {
		t.Parallel()

		html := `<div>
<h2>About the role</h2>
<p>You will build <strong>Go</strong> services.</p>
<h2>Requirements</h2>
<ul><li>5+ years experience</li><li>Kubernetes</li></ul>
</div>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "## About the role")
		assert.Contains(t, md, "**Go**")
		assert.Contains(t, md, "- 5+ years experience")
		assert.Contains(t, md, "- Kubernetes")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>Apply on <a href="https://example.com/careers">our site</a>.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[our site](https://example.com/careers)")
	})

	t.Run("converts ordered lists", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert(`<ol><li>Apply</li><li>Interview</li></ol>`)

		require.NoError(t, err)
		assert.Contains(t, md, "1. Apply")
		assert.Contains(t, md, "2. Interview")
	})

	t.Run("converts benefits table", func(t *testing.T) {
		t.Parallel()

		html := `<table>
<thead><tr><th>Benefit</th><th>Detail</th></tr></thead>
<tbody><tr><td>Leave</td><td>25 days</td></tr></tbody>
</table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "Benefit")
		assert.Contains(t, md, "25 days")
		assert.Contains(t, md, "|")
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		md, err := htmltomarkdown.NewConverter().Convert("\n<p>Hello</p>\n\n")

		require.NoError(t, err)
		assert.Equal(t, "Hello", md)
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   ")

		assert.Equal(t, jobsnap.EINVALID, jobsnap.ErrorCode(err))
	})

	t.Run("returns error for markup without text", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("<div></div>")

		assert.Equal(t, jobsnap.EINVALID, jobsnap.ErrorCode(err))
	})
}
