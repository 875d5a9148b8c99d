package main

import (
	"fmt"

	"github.com/fwojciec/jobsnap"
)

// Run executes the analyze command. The analysis is stored on the job and
// its status follows the match score.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	job, err := deps.Jobs.FindJobByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(err))
		return err
	}

	resume, err := deps.Resumes.CurrentResume(deps.Ctx)
	if jobsnap.ErrorCode(err) == jobsnap.ENOTFOUND {
		fmt.Fprintln(deps.Stderr, "error: upload your resume first with 'jobsnap resume add'")
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(err))
		return err
	}

	resp, err := deps.Analyzer.Analyze(deps.Ctx, jobsnap.NewAnalysisRequest(job, resume))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Failed to analyze job: %s\n", jobsnap.ErrorMessage(err))
		return err
	}

	status := jobsnap.StatusForScore(resp.Analysis.MatchScore)
	if _, err := deps.Jobs.UpdateJob(deps.Ctx, job.ID, jobsnap.JobUpdate{
		Status:   &status,
		Analysis: &resp.Analysis,
	}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", jobsnap.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, jobsnap.FormatAnalysis(&resp.Analysis))
	fmt.Fprintf(deps.Stderr, "Analysis complete. Match Score: %g%%\n", resp.Analysis.MatchScore)
	return nil
}
