package jobsnap

import (
	"context"
	"time"
)

// Scrape thresholds. The values were tuned against real postings and are
// kept as defaults that callers may override.
const (
	// MinTitleLength is the shortest title accepted as a successful scrape.
	MinTitleLength = 2

	// MinDescriptionLength is the description length below which the whole
	// page body is considered as a replacement description.
	MinDescriptionLength = 100

	// MaxLocationLength bounds location candidates; longer text is assumed
	// to be something other than a location.
	MaxLocationLength = 100
)

// ErrNoTitle is the failure message reported when no usable title is found.
const ErrNoTitle = "Could not extract job title."

// JobFields holds the best-effort fields read from a job posting page.
// Empty strings mean the field could not be located.
type JobFields struct {
	Title       string
	Company     string
	Location    string
	Description string

	// DescriptionHTML is the noise-filtered markup Description was read from.
	DescriptionHTML string
}

// ScrapeResult is a job posting captured from a page.
type ScrapeResult struct {
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"descriptionHtml,omitempty"`
	URL             string    `json:"url"`
	Timestamp       time.Time `json:"timestamp"`
	Site            Site      `json:"site"`
}

// ScrapeOutcome is the typed result of a scrape request. Exactly one of
// Data or Error is set, matching Success.
type ScrapeOutcome struct {
	Success bool          `json:"success"`
	Site    Site          `json:"site,omitempty"`
	Data    *ScrapeResult `json:"data,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// Failed builds an unsuccessful outcome carrying msg.
func Failed(msg string) *ScrapeOutcome {
	return &ScrapeOutcome{Success: false, Error: msg}
}

// Selection is the payload of a captured text selection.
type Selection struct {
	Description string `json:"description"`
}

// SelectionOutcome is the response to a selection capture request.
type SelectionOutcome struct {
	Success bool       `json:"success"`
	Data    *Selection `json:"data,omitempty"`
	Error   string     `json:"error,omitempty"`
}

// FieldExtractor reads job fields from rendered page HTML.
type FieldExtractor interface {
	// Extract runs the strategy registered for site against html.
	// Locator misses leave fields empty; an error means the HTML could not
	// be parsed at all.
	Extract(site Site, html string) (*JobFields, error)

	// VisibleText returns the noise-filtered text of the whole page body.
	VisibleText(html string) (string, error)
}

// Tab is a single loaded page owned by one scrape.
type Tab interface {
	// URL returns the page URL after redirects.
	URL() string

	// Materialize forces lazily loaded content to render by scrolling the
	// page and returns once the page has settled.
	Materialize(ctx context.Context) error

	// HTML returns the current rendered markup of the page.
	HTML(ctx context.Context) (string, error)

	// Selection returns the text the user has selected on the page.
	Selection(ctx context.Context) (string, error)

	// Close releases the tab. Tabs that were attached to an existing page
	// leave that page open.
	Close() error
}

// Browser opens tabs on job posting pages.
type Browser interface {
	// Open loads url in a tab. The context controls timeout and cancellation.
	Open(ctx context.Context, url string) (Tab, error)

	// Close releases browser resources.
	Close() error
}

// JobScraper turns job posting pages into structured results.
type JobScraper interface {
	// ScrapeJob loads url, extracts the posting and reports the outcome.
	// It never returns an error: failures are reported in the outcome.
	ScrapeJob(ctx context.Context, url string) *ScrapeOutcome

	// CaptureSelection returns the normalized text selected on the page at url.
	CaptureSelection(ctx context.Context, url string) *SelectionOutcome
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
