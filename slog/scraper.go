// Package slog provides logging decorators for jobsnap services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobsnap"
)

// Ensure LoggingScraper implements jobsnap.JobScraper.
var _ jobsnap.JobScraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a JobScraper with logging.
type LoggingScraper struct {
	next   jobsnap.JobScraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next jobsnap.JobScraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// ScrapeJob delegates to the wrapped scraper and logs the outcome.
func (s *LoggingScraper) ScrapeJob(ctx context.Context, url string) (outcome *jobsnap.ScrapeOutcome) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"success", outcome.Success,
			"duration", time.Since(begin),
		}
		if outcome.Success {
			attrs = append(attrs,
				"site", outcome.Site,
				"title", outcome.Data.Title,
				"description_len", len(outcome.Data.Description),
			)
			s.logger.Info("scrape", attrs...)
			return
		}
		s.logger.Warn("scrape", append(attrs, "err", outcome.Error)...)
	}(time.Now())
	return s.next.ScrapeJob(ctx, url)
}

// CaptureSelection delegates to the wrapped scraper and logs the outcome.
func (s *LoggingScraper) CaptureSelection(ctx context.Context, url string) (outcome *jobsnap.SelectionOutcome) {
	defer func(begin time.Time) {
		chars := 0
		if outcome.Data != nil {
			chars = len(outcome.Data.Description)
		}
		s.logger.Info("capture selection",
			"url", url,
			"success", outcome.Success,
			"chars", chars,
			"duration", time.Since(begin),
			"err", outcome.Error,
		)
	}(time.Now())
	return s.next.CaptureSelection(ctx, url)
}
