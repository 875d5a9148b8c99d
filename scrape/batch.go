package scrape

import (
	"context"

	"github.com/fwojciec/jobsnap"
	"github.com/fwojciec/jobsnap/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of postings scraped in parallel.
const DefaultConcurrency = 4

// dedupFalsePositiveRate is the acceptable chance of skipping a distinct URL.
const dedupFalsePositiveRate = 0.001

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressSkipped
	ProgressFinished
)

// ProgressEvent reports progress during a batch scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     string
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// BatchItem is the result for one requested URL. Duplicate items have no
// outcome.
type BatchItem struct {
	URL       string
	Outcome   *jobsnap.ScrapeOutcome
	Duplicate bool
}

// BatchResult holds the outcome of a batch scrape, in request order.
type BatchResult struct {
	Items      []BatchItem
	Succeeded  int
	Failed     int
	Duplicates int
}

// ScrapeAll scrapes urls with bounded concurrency. Repeated URLs, including
// tracking variants of the same posting, are scraped once. Page loads are
// rate limited per board when a RateLimiter is configured. Progress events
// are delivered from a single goroutine.
//
// Every non-duplicate URL gets an outcome, including ones the rate limiter
// refused. The returned error is non-nil only when ctx ends before every URL
// was attempted; the partial result is still returned.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) (*BatchResult, error) {
	result := &BatchResult{Items: make([]BatchItem, len(urls))}
	total := len(urls)
	if total == 0 {
		return result, nil
	}

	emit := func(e ProgressEvent) {
		if progress != nil {
			e.Total = total
			progress(e)
		}
	}
	emit(ProgressEvent{Type: ProgressStarted})

	seen := bloom.NewFilter(uint(total), dedupFalsePositiveRate)
	var queue []int
	for i, u := range urls {
		result.Items[i].URL = u
		if !seen.AddNew(u) {
			result.Items[i].Duplicate = true
			continue
		}
		queue = append(queue, i)
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type done struct {
		position int
		outcome  *jobsnap.ScrapeOutcome
	}
	doneCh := make(chan done, len(queue))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, i := range queue {
			g.Go(func() error {
				if s.RateLimiter != nil {
					if err := s.RateLimiter.Wait(gctx, hostOf(urls[i])); err != nil {
						doneCh <- done{position: i, outcome: jobsnap.Failed(jobsnap.ErrorMessage(err))}
						return nil
					}
				}
				doneCh <- done{position: i, outcome: s.ScrapeJob(gctx, urls[i])}
				return nil
			})
		}
		_ = g.Wait()
		close(doneCh)
	}()

	completed := 0
	for i, item := range result.Items {
		if item.Duplicate {
			completed++
			result.Duplicates++
			emit(ProgressEvent{Type: ProgressSkipped, Completed: completed, URL: urls[i]})
		}
	}

	for d := range doneCh {
		result.Items[d.position].Outcome = d.outcome
		completed++
		if d.outcome.Success {
			result.Succeeded++
			emit(ProgressEvent{Type: ProgressCompleted, Completed: completed, URL: urls[d.position]})
			continue
		}
		result.Failed++
		emit(ProgressEvent{Type: ProgressFailed, Completed: completed, URL: urls[d.position], Error: d.outcome.Error})
	}

	emit(ProgressEvent{Type: ProgressFinished, Completed: completed})

	return result, ctx.Err()
}
