package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/jobsnap"
)

// Run executes the jobs command.
func (c *JobsCmd) Run(deps *Dependencies) error {
	filter := jobsnap.JobFilter{Limit: c.Limit}
	if c.Status != "" {
		status := jobsnap.JobStatus(c.Status)
		filter.Status = &status
	}
	if c.Site != "" {
		site := jobsnap.Site(c.Site)
		filter.Site = &site
	}

	jobs, err := deps.Jobs.FindJobs(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(err))
		return err
	}

	if len(jobs) == 0 {
		fmt.Fprintln(deps.Stdout, "No jobs saved. Use 'jobsnap scrape --save' to add one.")
		return nil
	}

	now := time.Now()
	for _, j := range jobs {
		score := "-"
		if j.Analysis != nil {
			score = fmt.Sprintf("%g%%", j.Analysis.MatchScore)
		}
		fmt.Fprintf(deps.Stdout, "%s  %-10s  %4s  %-9s  %s @ %s (%s)\n",
			j.ID, j.Status, score, jobsnap.TimeAgo(j.SavedAt, now), j.Title, j.Company, j.Location)
	}
	return nil
}

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	job, err := deps.Jobs.FindJobByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s (%s, %s)\n%s\n\n", job.ID, job.Site, job.Status, job.URL)
	fmt.Fprintln(deps.Stdout, jobsnap.FormatJob(job))
	if job.Analysis != nil {
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, jobsnap.FormatAnalysis(job.Analysis))
	}
	return nil
}

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return jobsnap.Errorf(jobsnap.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Jobs.DeleteJob(deps.Ctx, c.ID); err != nil {
		if jobsnap.ErrorCode(err) == jobsnap.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: job %q not found. Use 'jobsnap jobs' to see saved jobs.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted job %s\n", c.ID)
	return nil
}
