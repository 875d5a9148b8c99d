package goquery_test

import (
	"testing"

	"github.com/fwojciec/jobsnap"
	"github.com/fwojciec/jobsnap/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("get returns nil for unregistered site", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry(goquery.NewGenericStrategy())

		assert.Nil(t, r.Get(jobsnap.SiteLinkedIn))
	})

	t.Run("for falls back when site is unregistered", func(t *testing.T) {
		t.Parallel()

		fallback := goquery.NewGenericStrategy()
		r := goquery.NewRegistry(fallback)

		assert.Same(t, fallback, r.For(jobsnap.SiteNaukri))
	})

	t.Run("register replaces existing strategy", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry(goquery.NewGenericStrategy())
		first := goquery.NewNaukriStrategy()
		second := goquery.NewNaukriStrategy()
		r.Register(first)
		r.Register(second)

		assert.Same(t, second, r.For(jobsnap.SiteNaukri))
	})

	t.Run("default registry covers every portal", func(t *testing.T) {
		t.Parallel()

		r := goquery.DefaultRegistry()

		got := r.List()

		require.Len(t, got, 4)
		assert.Equal(t, []jobsnap.Site{
			jobsnap.SiteBdjobs,
			jobsnap.SiteGlassdoor,
			jobsnap.SiteLinkedIn,
			jobsnap.SiteNaukri,
		}, got)
		assert.Equal(t, jobsnap.SiteGeneric, r.For(jobsnap.Site("unknown")).Site)
	})
}
