package mock

import (
	"context"

	"github.com/fwojciec/jobsnap"
)

var _ jobsnap.ResumeService = (*ResumeService)(nil)

// ResumeService is a mock implementation of jobsnap.ResumeService.
type ResumeService struct {
	CreateResumeFn     func(ctx context.Context, resume *jobsnap.Resume) error
	FindResumeByIDFn   func(ctx context.Context, id string) (*jobsnap.Resume, error)
	FindResumesFn      func(ctx context.Context) ([]*jobsnap.Resume, error)
	SetCurrentResumeFn func(ctx context.Context, id string) error
	CurrentResumeFn    func(ctx context.Context) (*jobsnap.Resume, error)
}

func (s *ResumeService) CreateResume(ctx context.Context, resume *jobsnap.Resume) error {
	return s.CreateResumeFn(ctx, resume)
}

func (s *ResumeService) FindResumeByID(ctx context.Context, id string) (*jobsnap.Resume, error) {
	return s.FindResumeByIDFn(ctx, id)
}

func (s *ResumeService) FindResumes(ctx context.Context) ([]*jobsnap.Resume, error) {
	return s.FindResumesFn(ctx)
}

func (s *ResumeService) SetCurrentResume(ctx context.Context, id string) error {
	return s.SetCurrentResumeFn(ctx, id)
}

func (s *ResumeService) CurrentResume(ctx context.Context) (*jobsnap.Resume, error) {
	return s.CurrentResumeFn(ctx)
}
