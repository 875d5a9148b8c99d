package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/jobsnap"
	"github.com/fwojciec/jobsnap/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 1 {
		outcome := deps.Scraper.ScrapeJob(deps.Ctx, c.URLs[0])
		if err := c.report(deps, c.URLs[0], outcome); err != nil {
			return err
		}
		if !outcome.Success {
			return jobsnap.Errorf(jobsnap.EINVALID, "%s", outcome.Error)
		}
		return nil
	}

	if c.Concurrency > 0 {
		deps.Batch.Concurrency = c.Concurrency
	}
	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Scraping %d URLs\n", event.Total)
		case scrape.ProgressSkipped:
			fmt.Fprintf(deps.Stderr, "  duplicate %s\n", event.URL)
		}
	}

	// A canceled batch still reports the postings it finished.
	result, batchErr := deps.Batch.ScrapeAll(deps.Ctx, c.URLs, progress)
	for _, item := range result.Items {
		if item.Duplicate || item.Outcome == nil {
			continue
		}
		if err := c.report(deps, item.URL, item.Outcome); err != nil {
			return err
		}
	}
	fmt.Fprintf(deps.Stderr, "%d scraped, %d failed, %d duplicates\n", result.Succeeded, result.Failed, result.Duplicates)
	if batchErr != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(batchErr))
	}
	return batchErr
}

// report prints one outcome and saves it when requested.
func (c *ScrapeCmd) report(deps *Dependencies, url string, outcome *jobsnap.ScrapeOutcome) error {
	if c.JSON {
		b, err := json.MarshalIndent(outcome, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, string(b))
	}

	if !outcome.Success {
		fmt.Fprintf(deps.Stderr, "fail %s: %s\n", url, outcome.Error)
		return nil
	}
	job := jobsnap.NewJob(outcome.Data)
	job.FillMissing()
	if !c.JSON {
		fmt.Fprintf(deps.Stdout, "[%s] %s\n\n", outcome.Site, url)
		fmt.Fprintln(deps.Stdout, jobsnap.FormatJob(job))
		fmt.Fprintln(deps.Stdout)
	}
	if !c.Save {
		return nil
	}

	err := deps.Jobs.CreateJob(deps.Ctx, job)
	switch {
	case jobsnap.ErrorCode(err) == jobsnap.ECONFLICT:
		fmt.Fprintf(deps.Stderr, "already saved %s\n", url)
	case err != nil:
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(err))
		return err
	default:
		fmt.Fprintf(deps.Stderr, "saved %s\n", job.ID)
	}
	return nil
}
