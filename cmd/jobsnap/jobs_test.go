package main_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/jobsnap"
	main "github.com/fwojciec/jobsnap/cmd/jobsnap"
	"github.com/fwojciec/jobsnap/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists jobs with status and score", func(t *testing.T) {
		t.Parallel()

		var gotFilter jobsnap.JobFilter
		deps, stdout, _ := newDeps()
		deps.Jobs = &mock.JobService{
			FindJobsFn: func(_ context.Context, filter jobsnap.JobFilter) ([]*jobsnap.Job, error) {
				gotFilter = filter
				return []*jobsnap.Job{
					{ID: "job-2", Title: "SRE", Company: "Initech", Location: "Berlin", Status: jobsnap.StatusHighMatch,
						Analysis: &jobsnap.Analysis{MatchScore: 91}, SavedAt: time.Now()},
					{ID: "job-1", Title: "Go Dev", Company: "Acme", Location: "Remote", Status: jobsnap.StatusNew,
						SavedAt: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)},
				}, nil
			},
		}

		err := (&main.JobsCmd{Status: "High Match", Site: "linkedin", Limit: 5}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "job-2")
		assert.Contains(t, out, "91%")
		assert.Contains(t, out, "just now")
		assert.Contains(t, out, "SRE @ Initech (Berlin)")
		assert.Contains(t, out, "2024-01-02")
		require.NotNil(t, gotFilter.Status)
		assert.Equal(t, jobsnap.StatusHighMatch, *gotFilter.Status)
		require.NotNil(t, gotFilter.Site)
		assert.Equal(t, jobsnap.SiteLinkedIn, *gotFilter.Site)
		assert.Equal(t, 5, gotFilter.Limit)
	})

	t.Run("shows helpful message when no jobs exist", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Jobs = &mock.JobService{
			FindJobsFn: func(context.Context, jobsnap.JobFilter) ([]*jobsnap.Job, error) {
				return nil, nil
			},
		}

		err := (&main.JobsCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No jobs saved")
	})
}

func TestShowCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows job and analysis", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Jobs = &mock.JobService{
			FindJobByIDFn: func(_ context.Context, id string) (*jobsnap.Job, error) {
				return &jobsnap.Job{
					ID: id, Title: "Go Dev", Company: "Acme", Location: "Remote", Description: "Build.",
					Site: jobsnap.SiteGeneric, Status: jobsnap.StatusReview,
					Analysis: &jobsnap.Analysis{MatchScore: 55, FitSummary: "Partial fit"},
				}, nil
			},
		}

		err := (&main.ShowCmd{ID: "job-1"}).Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "job-1 (generic, Review)")
		assert.Contains(t, out, "Title: Go Dev")
		assert.Contains(t, out, "Match Score: 55%")
		assert.Contains(t, out, "Partial fit")
	})

	t.Run("returns not found", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Jobs = &mock.JobService{
			FindJobByIDFn: func(context.Context, string) (*jobsnap.Job, error) {
				return nil, jobsnap.Errorf(jobsnap.ENOTFOUND, "job not found")
			},
		}

		err := (&main.ShowCmd{ID: "nope"}).Run(deps)

		assert.Equal(t, jobsnap.ENOTFOUND, jobsnap.ErrorCode(err))
		assert.Contains(t, stderr.String(), "job not found")
	})
}

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("requires force", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()

		err := (&main.DeleteCmd{ID: "job-1"}).Run(deps)

		assert.Equal(t, jobsnap.EINVALID, jobsnap.ErrorCode(err))
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("deletes job", func(t *testing.T) {
		t.Parallel()

		var deleted string
		deps, stdout, _ := newDeps()
		deps.Jobs = &mock.JobService{
			DeleteJobFn: func(_ context.Context, id string) error {
				deleted = id
				return nil
			},
		}

		err := (&main.DeleteCmd{ID: "job-1", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "job-1", deleted)
		assert.Contains(t, stdout.String(), "Deleted job job-1")
	})

	t.Run("reports missing job", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := newDeps()
		deps.Jobs = &mock.JobService{
			DeleteJobFn: func(context.Context, string) error {
				return jobsnap.Errorf(jobsnap.ENOTFOUND, "job not found")
			},
		}

		err := (&main.DeleteCmd{ID: "job-9", Force: true}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "jobsnap jobs")
	})
}
