package goquery

import (
	"slices"

	"github.com/fwojciec/jobsnap"
)

// Registry maps sites to extraction strategies. Sites without a registered
// strategy use the fallback strategy.
type Registry struct {
	fallback   *Strategy
	strategies map[jobsnap.Site]*Strategy
}

// NewRegistry creates an empty Registry that falls back to fallback.
func NewRegistry(fallback *Strategy) *Registry {
	return &Registry{
		fallback:   fallback,
		strategies: make(map[jobsnap.Site]*Strategy),
	}
}

// DefaultRegistry returns a Registry with every built-in site strategy and
// the generic strategy as fallback.
func DefaultRegistry() *Registry {
	r := NewRegistry(NewGenericStrategy())
	r.Register(NewLinkedInStrategy(jobsnap.MaxLocationLength))
	r.Register(NewGlassdoorStrategy())
	r.Register(NewBdjobsStrategy())
	r.Register(NewNaukriStrategy())
	return r
}

// Register adds a strategy under its Site, replacing any previous one.
func (r *Registry) Register(s *Strategy) {
	r.strategies[s.Site] = s
}

// Get returns the strategy registered for site, or nil.
func (r *Registry) Get(site jobsnap.Site) *Strategy {
	return r.strategies[site]
}

// For returns the strategy for site, falling back when none is registered.
func (r *Registry) For(site jobsnap.Site) *Strategy {
	if s, ok := r.strategies[site]; ok {
		return s
	}
	return r.fallback
}

// List returns all registered sites in sorted order.
func (r *Registry) List() []jobsnap.Site {
	sites := make([]jobsnap.Site, 0, len(r.strategies))
	for site := range r.strategies {
		sites = append(sites, site)
	}
	slices.Sort(sites)
	return sites
}
