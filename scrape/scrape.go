// Package scrape orchestrates turning job posting pages into structured
// results. It coordinates page loading, lazy-load materialization, per-site
// field extraction, validation and the description quality fallback.
package scrape

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/jobsnap"
)

var _ jobsnap.JobScraper = (*Scraper)(nil)

// Scraper scrapes job postings. The zero values of the tuning fields select
// the package defaults.
type Scraper struct {
	Browser   jobsnap.Browser
	Extractor jobsnap.FieldExtractor

	// RateLimiter, when set, throttles page loads per host in ScrapeAll.
	RateLimiter jobsnap.DomainLimiter

	// Concurrency bounds parallel scrapes in ScrapeAll. Defaults to 4.
	Concurrency int

	// RetryDelays are the waits between page load attempts.
	// Nil means DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	MinTitleLength       int
	MinDescriptionLength int

	// Now returns the capture timestamp. Defaults to time.Now.
	Now func() time.Time

	// Logf, when set, receives retry notices.
	Logf LogFunc
}

// ScrapeJob loads url, extracts the posting and reports the outcome. Every
// error and panic along the way becomes an unsuccessful outcome.
func (s *Scraper) ScrapeJob(ctx context.Context, url string) (out *jobsnap.ScrapeOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = jobsnap.Failed(fmt.Sprint(r))
		}
	}()

	tab, err := s.open(ctx, url)
	if err != nil {
		return jobsnap.Failed(jobsnap.ErrorMessage(err))
	}
	defer tab.Close()

	if err := tab.Materialize(ctx); err != nil {
		return jobsnap.Failed(jobsnap.ErrorMessage(err))
	}

	// The snapshot must be taken after materialization.
	html, err := tab.HTML(ctx)
	if err != nil {
		return jobsnap.Failed(jobsnap.ErrorMessage(err))
	}

	pageURL := tab.URL()
	if pageURL == "" {
		pageURL = url
	}
	site := jobsnap.SiteForURL(pageURL)

	fields, err := s.Extractor.Extract(site, html)
	if err != nil {
		return jobsnap.Failed(jobsnap.ErrorMessage(err))
	}

	if utf8.RuneCountInString(fields.Title) < s.minTitleLength() {
		return jobsnap.Failed(jobsnap.ErrNoTitle)
	}

	if err := s.improveDescription(fields, html); err != nil {
		return jobsnap.Failed(jobsnap.ErrorMessage(err))
	}

	return &jobsnap.ScrapeOutcome{
		Success: true,
		Site:    site,
		Data: &jobsnap.ScrapeResult{
			Title:           fields.Title,
			Company:         fields.Company,
			Location:        fields.Location,
			Description:     fields.Description,
			DescriptionHTML: fields.DescriptionHTML,
			URL:             pageURL,
			Timestamp:       s.now(),
			Site:            site,
		},
	}
}

// improveDescription replaces a short description with the visible text of
// the whole page when that text is strictly longer. The replacement has no
// corresponding markup, so DescriptionHTML is cleared.
func (s *Scraper) improveDescription(fields *jobsnap.JobFields, html string) error {
	current := utf8.RuneCountInString(fields.Description)
	if current >= s.minDescriptionLength() {
		return nil
	}

	body, err := s.Extractor.VisibleText(html)
	if err != nil {
		return err
	}
	if utf8.RuneCountInString(body) > current {
		fields.Description = body
		fields.DescriptionHTML = ""
	}
	return nil
}

// CaptureSelection returns the normalized text the user selected on the
// page at url. An empty selection is a successful, empty capture.
func (s *Scraper) CaptureSelection(ctx context.Context, url string) (out *jobsnap.SelectionOutcome) {
	defer func() {
		if r := recover(); r != nil {
			out = &jobsnap.SelectionOutcome{Error: fmt.Sprint(r)}
		}
	}()

	tab, err := s.Browser.Open(ctx, url)
	if err != nil {
		return &jobsnap.SelectionOutcome{Error: jobsnap.ErrorMessage(err)}
	}
	defer tab.Close()

	text, err := tab.Selection(ctx)
	if err != nil {
		return &jobsnap.SelectionOutcome{Error: jobsnap.ErrorMessage(err)}
	}

	return &jobsnap.SelectionOutcome{
		Success: true,
		Data:    &jobsnap.Selection{Description: jobsnap.Normalize(text)},
	}
}

// open loads url, retrying transient failures.
func (s *Scraper) open(ctx context.Context, url string) (jobsnap.Tab, error) {
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return OpenWithRetryDelays(ctx, url, s.Browser.Open, s.Logf, delays)
}

func (s *Scraper) minTitleLength() int {
	if s.MinTitleLength > 0 {
		return s.MinTitleLength
	}
	return jobsnap.MinTitleLength
}

func (s *Scraper) minDescriptionLength() int {
	if s.MinDescriptionLength > 0 {
		return s.MinDescriptionLength
	}
	return jobsnap.MinDescriptionLength
}

func (s *Scraper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
