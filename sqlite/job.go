package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/jobsnap"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ jobsnap.JobService = (*JobService)(nil)

// JobService implements jobsnap.JobService using SQLite.
type JobService struct {
	db  *DB
	now func() time.Time
}

// NewJobService creates a new JobService.
func NewJobService(db *DB) *JobService {
	return &JobService{db: db, now: time.Now}
}

const jobColumns = `id, title, company, location, description, description_html, url, site,
	status, analysis, content_hash, scraped_at, saved_at`

// CreateJob saves a new job, assigning its ID, content hash and save time.
// Saving the same posting twice with unchanged content is a conflict.
func (s *JobService) CreateJob(ctx context.Context, job *jobsnap.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	hash := hashJob(job)
	var existing string
	err := s.db.QueryRowContext(ctx,
		"SELECT id FROM jobs WHERE url = ? AND content_hash = ?", job.URL, hash,
	).Scan(&existing)
	if err == nil {
		return jobsnap.Errorf(jobsnap.ECONFLICT, "job already saved")
	}
	if err != sql.ErrNoRows {
		return err
	}

	analysis, err := encodeAnalysis(job.Analysis)
	if err != nil {
		return err
	}

	job.ID = uuid.New().String()
	job.ContentHash = hash
	job.SavedAt = s.now().UTC()
	if job.ScrapedAt.IsZero() {
		job.ScrapedAt = job.SavedAt
	}
	if job.Status == "" {
		job.Status = jobsnap.StatusNew
	}
	if job.Site == "" {
		job.Site = jobsnap.SiteForURL(job.URL)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO jobs (`+jobColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, job.ID, job.Title, job.Company, job.Location, job.Description, job.DescriptionHTML,
		job.URL, string(job.Site), string(job.Status), analysis, job.ContentHash,
		formatTime(job.ScrapedAt), formatTime(job.SavedAt))

	return err
}

// FindJobByID retrieves a job by ID.
func (s *JobService) FindJobByID(ctx context.Context, id string) (*jobsnap.Job, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id = ?", id)
	job, err := scanJob(row)
	if err == sql.ErrNoRows {
		return nil, jobsnap.Errorf(jobsnap.ENOTFOUND, "job not found")
	}
	return job, err
}

// FindJobs retrieves jobs matching the filter, newest first.
func (s *JobService) FindJobs(ctx context.Context, filter jobsnap.JobFilter) ([]*jobsnap.Job, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + jobColumns + " FROM jobs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Site != nil {
		query.WriteString(" AND site = ?")
		args = append(args, string(*filter.Site))
	}
	if filter.Status != nil {
		query.WriteString(" AND status = ?")
		args = append(args, string(*filter.Status))
	}

	query.WriteString(" ORDER BY saved_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []*jobsnap.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

// UpdateJob updates an existing job. Changing content fields recomputes the
// content hash.
func (s *JobService) UpdateJob(ctx context.Context, id string, upd jobsnap.JobUpdate) (*jobsnap.Job, error) {
	job, err := s.FindJobByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		job.Title = *upd.Title
	}
	if upd.Company != nil {
		job.Company = *upd.Company
	}
	if upd.Location != nil {
		job.Location = *upd.Location
	}
	if upd.Description != nil {
		job.Description = *upd.Description
	}
	if upd.Status != nil {
		job.Status = *upd.Status
	}
	if upd.Analysis != nil {
		job.Analysis = upd.Analysis
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	job.ContentHash = hashJob(job)

	analysis, err := encodeAnalysis(job.Analysis)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE jobs
		SET title = ?, company = ?, location = ?, description = ?, status = ?, analysis = ?, content_hash = ?
		WHERE id = ?
	`, job.Title, job.Company, job.Location, job.Description, string(job.Status), analysis,
		job.ContentHash, id)
	if err != nil {
		return nil, err
	}

	return job, nil
}

// DeleteJob permanently removes a job.
func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return jobsnap.Errorf(jobsnap.ENOTFOUND, "job not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(row scanner) (*jobsnap.Job, error) {
	var job jobsnap.Job
	var site, status, scrapedAt, savedAt string
	var analysis *string

	if err := row.Scan(&job.ID, &job.Title, &job.Company, &job.Location, &job.Description,
		&job.DescriptionHTML, &job.URL, &site, &status, &analysis, &job.ContentHash,
		&scrapedAt, &savedAt); err != nil {
		return nil, err
	}
	job.Site = jobsnap.Site(site)
	job.Status = jobsnap.JobStatus(status)

	var err error
	if job.Analysis, err = decodeAnalysis(analysis); err != nil {
		return nil, err
	}
	if job.ScrapedAt, err = parseTime(scrapedAt, "scraped_at"); err != nil {
		return nil, err
	}
	if job.SavedAt, err = parseTime(savedAt, "saved_at"); err != nil {
		return nil, err
	}

	return &job, nil
}
