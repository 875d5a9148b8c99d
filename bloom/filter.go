// Package bloom provides job URL de-duplication using Bloom filters.
package bloom

import (
	"net/url"
	"strings"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// trackingParams are query parameters job boards append for attribution.
// They never change which posting a URL points to.
var trackingParams = map[string]bool{
	"trk":        true,
	"trackingId": true,
	"refId":      true,
	"src":        true,
}

// Filter remembers job URLs that were already scraped. URLs are
// canonicalized first, so share links and tracking variants of the same
// posting collide. Filter is safe for concurrent use.
type Filter struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected URLs
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add records a URL.
func (f *Filter) Add(rawURL string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.f.AddString(Canonical(rawURL))
}

// Test returns true if the URL might have been added.
// False positives are possible; false negatives are not.
func (f *Filter) Test(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.f.TestString(Canonical(rawURL))
}

// AddNew records the URL and reports whether it was new.
func (f *Filter) AddNew(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.f.TestAndAddString(Canonical(rawURL))
}

// EstimatedCount returns the approximate number of URLs in the filter.
func (f *Filter) EstimatedCount() uint {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint(f.f.ApproximatedSize())
}

// Canonical strips the fragment, tracking parameters and a trailing slash
// from rawURL and lower-cases its host. Unparseable input is returned
// unchanged.
func Canonical(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return rawURL
	}
	u.Fragment = ""
	u.RawFragment = ""
	u.Host = strings.ToLower(u.Host)
	u.Path = strings.TrimSuffix(u.Path, "/")
	u.RawPath = ""

	if u.RawQuery != "" {
		q := u.Query()
		for key := range q {
			if trackingParams[key] || strings.HasPrefix(key, "utm_") {
				q.Del(key)
			}
		}
		u.RawQuery = q.Encode()
	}
	return u.String()
}
