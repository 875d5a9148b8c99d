// Package fs exports saved jobs as Markdown files.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/jobsnap"
)

var _ jobsnap.JobStore = (*JobStore)(nil)

// JobStore implements jobsnap.JobStore with atomic update semantics.
// Jobs are written to baseDir/name.tmp and the whole directory replaces
// baseDir/name on Commit, so an interrupted export never leaves a partial
// directory behind.
type JobStore struct {
	baseDir string
	name    string
}

// NewJobStore creates a new JobStore.
func NewJobStore(baseDir, name string) *JobStore {
	return &JobStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *JobStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *JobStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes export to the temporary directory.
func (s *JobStore) Save(ctx context.Context, export *jobsnap.JobExport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if export == nil || export.Job == nil {
		return jobsnap.Errorf(jobsnap.EINVALID, "job required")
	}

	fullPath := filepath.Join(s.tempDir(), JobPath(export.Job))
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(FormatJob(export)), 0644)
}

// Commit replaces the final directory with the temporary one.
func (s *JobStore) Commit() error {
	if _, err := os.Stat(s.tempDir()); os.IsNotExist(err) {
		// Nothing saved: commit an empty export.
		if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
			return err
		}
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards everything saved since the last Commit.
func (s *JobStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
