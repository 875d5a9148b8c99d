package mock

import (
	"context"

	"github.com/fwojciec/jobsnap"
)

var _ jobsnap.JobStore = (*JobStore)(nil)

// JobStore is a mock implementation of jobsnap.JobStore.
type JobStore struct {
	SaveFn   func(ctx context.Context, export *jobsnap.JobExport) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *JobStore) Save(ctx context.Context, export *jobsnap.JobExport) error {
	return s.SaveFn(ctx, export)
}

func (s *JobStore) Commit() error {
	return s.CommitFn()
}

func (s *JobStore) Abort() error {
	return s.AbortFn()
}
