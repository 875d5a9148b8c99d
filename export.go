package jobsnap

import (
	"context"
	"strings"
)

// JobExport is a saved job rendered for export.
type JobExport struct {
	Job      *Job
	Markdown string
}

// NewJobExport renders job's description as Markdown. The noise-filtered
// description HTML is converted when present; otherwise, or when conversion
// yields nothing, the plain description is used as is.
func NewJobExport(job *Job, conv Converter) (*JobExport, error) {
	if strings.TrimSpace(job.DescriptionHTML) != "" {
		md, err := conv.Convert(job.DescriptionHTML)
		if err != nil && ErrorCode(err) != EINVALID {
			return nil, err
		}
		if md = strings.TrimSpace(md); md != "" {
			return &JobExport{Job: job, Markdown: md}, nil
		}
	}
	return &JobExport{Job: job, Markdown: job.Description}, nil
}

// JobStore persists exported jobs with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type JobStore interface {
	Save(ctx context.Context, export *JobExport) error
	Commit() error
	Abort() error
}
