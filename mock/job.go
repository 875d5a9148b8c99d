package mock

import (
	"context"

	"github.com/fwojciec/jobsnap"
)

var _ jobsnap.JobService = (*JobService)(nil)

// JobService is a mock implementation of jobsnap.JobService.
type JobService struct {
	CreateJobFn   func(ctx context.Context, job *jobsnap.Job) error
	FindJobByIDFn func(ctx context.Context, id string) (*jobsnap.Job, error)
	FindJobsFn    func(ctx context.Context, filter jobsnap.JobFilter) ([]*jobsnap.Job, error)
	UpdateJobFn   func(ctx context.Context, id string, upd jobsnap.JobUpdate) (*jobsnap.Job, error)
	DeleteJobFn   func(ctx context.Context, id string) error
}

func (s *JobService) CreateJob(ctx context.Context, job *jobsnap.Job) error {
	return s.CreateJobFn(ctx, job)
}

func (s *JobService) FindJobByID(ctx context.Context, id string) (*jobsnap.Job, error) {
	return s.FindJobByIDFn(ctx, id)
}

func (s *JobService) FindJobs(ctx context.Context, filter jobsnap.JobFilter) ([]*jobsnap.Job, error) {
	return s.FindJobsFn(ctx, filter)
}

func (s *JobService) UpdateJob(ctx context.Context, id string, upd jobsnap.JobUpdate) (*jobsnap.Job, error) {
	return s.UpdateJobFn(ctx, id, upd)
}

func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	return s.DeleteJobFn(ctx, id)
}
