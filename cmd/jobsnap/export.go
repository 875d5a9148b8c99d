package main

import (
	"fmt"

	"github.com/fwojciec/jobsnap"
)

// Run executes the export command. Either every job is exported or the
// previous export is left untouched.
func (c *ExportCmd) Run(deps *Dependencies) error {
	jobs, err := deps.Jobs.FindJobs(deps.Ctx, jobsnap.JobFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(err))
		return err
	}

	store := deps.NewJobStore(c.Dir)
	for _, job := range jobs {
		export, err := jobsnap.NewJobExport(job, deps.Converter)
		if err == nil {
			err = store.Save(deps.Ctx, export)
		}
		if err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error exporting %s: %s\n", job.ID, jobsnap.ErrorMessage(err))
			return err
		}
	}
	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d jobs to %s\n", len(jobs), c.Dir)
	return nil
}
