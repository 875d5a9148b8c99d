package scrape

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/jobsnap"
	"golang.org/x/time/rate"
)

var _ jobsnap.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter throttles page loads per job board. Each board gets its own
// token bucket, so a batch of postings from one board is spread out while
// postings from different boards load in parallel.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
}

// NewDomainLimiter allows rps page loads per second per board with a burst
// of 1. A non-positive rps disables throttling.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
	}
}

// Wait blocks until a page load from domain is allowed. "www." prefixes and
// letter case are ignored. Returns an error if ctx ends first.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	key := strings.TrimPrefix(strings.ToLower(domain), "www.")

	d.mu.Lock()
	limiter, ok := d.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(d.limit, 1)
		d.limiters[key] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// hostOf returns the host of rawURL, or rawURL itself when it has none.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Hostname()
}
