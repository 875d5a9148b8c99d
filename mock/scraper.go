package mock

import (
	"context"

	"github.com/fwojciec/jobsnap"
)

var (
	_ jobsnap.JobScraper    = (*JobScraper)(nil)
	_ jobsnap.DomainLimiter = (*DomainLimiter)(nil)
)

// JobScraper is a mock implementation of jobsnap.JobScraper.
type JobScraper struct {
	ScrapeJobFn        func(ctx context.Context, url string) *jobsnap.ScrapeOutcome
	CaptureSelectionFn func(ctx context.Context, url string) *jobsnap.SelectionOutcome
}

func (s *JobScraper) ScrapeJob(ctx context.Context, url string) *jobsnap.ScrapeOutcome {
	return s.ScrapeJobFn(ctx, url)
}

func (s *JobScraper) CaptureSelection(ctx context.Context, url string) *jobsnap.SelectionOutcome {
	return s.CaptureSelectionFn(ctx, url)
}

// DomainLimiter is a mock implementation of jobsnap.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
