package sqlite

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/fwojciec/jobsnap"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ jobsnap.ResumeService = (*ResumeService)(nil)

// currentResumeKey is the settings key holding the selected resume ID.
const currentResumeKey = "current_resume"

// ResumeService implements jobsnap.ResumeService using SQLite.
type ResumeService struct {
	db  *DB
	now func() time.Time
}

// NewResumeService creates a new ResumeService.
func NewResumeService(db *DB) *ResumeService {
	return &ResumeService{db: db, now: time.Now}
}

// CreateResume saves a new resume. A missing file type is sniffed from the
// content.
func (s *ResumeService) CreateResume(ctx context.Context, resume *jobsnap.Resume) error {
	if err := resume.Validate(); err != nil {
		return err
	}

	resume.ID = uuid.New().String()
	resume.FileSize = int64(len(resume.Content))
	resume.UploadedAt = s.now().UTC()
	if resume.FileType == "" {
		resume.FileType = http.DetectContentType(resume.Content)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resumes (id, file_name, file_type, file_size, content, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, resume.ID, resume.FileName, resume.FileType, resume.FileSize, resume.Content,
		formatTime(resume.UploadedAt))

	return err
}

// FindResumeByID retrieves a resume by ID.
func (s *ResumeService) FindResumeByID(ctx context.Context, id string) (*jobsnap.Resume, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, file_name, file_type, file_size, content, uploaded_at
		FROM resumes
		WHERE id = ?
	`, id)
	resume, err := scanResume(row)
	if err == sql.ErrNoRows {
		return nil, jobsnap.Errorf(jobsnap.ENOTFOUND, "resume not found")
	}
	return resume, err
}

// FindResumes retrieves all resumes, newest first.
func (s *ResumeService) FindResumes(ctx context.Context) ([]*jobsnap.Resume, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, file_name, file_type, file_size, content, uploaded_at
		FROM resumes
		ORDER BY uploaded_at DESC, rowid DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resumes []*jobsnap.Resume
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, resume)
	}

	return resumes, rows.Err()
}

// SetCurrentResume marks the resume used for analysis.
func (s *ResumeService) SetCurrentResume(ctx context.Context, id string) error {
	if _, err := s.FindResumeByID(ctx, id); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, currentResumeKey, id)
	return err
}

// CurrentResume returns the resume used for analysis.
func (s *ResumeService) CurrentResume(ctx context.Context) (*jobsnap.Resume, error) {
	var id string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM settings WHERE key = ?", currentResumeKey,
	).Scan(&id)
	if err == sql.ErrNoRows {
		return nil, jobsnap.Errorf(jobsnap.ENOTFOUND, "no resume selected")
	}
	if err != nil {
		return nil, err
	}

	return s.FindResumeByID(ctx, id)
}

func scanResume(row scanner) (*jobsnap.Resume, error) {
	var resume jobsnap.Resume
	var uploadedAt string

	if err := row.Scan(&resume.ID, &resume.FileName, &resume.FileType, &resume.FileSize,
		&resume.Content, &uploadedAt); err != nil {
		return nil, err
	}

	var err error
	if resume.UploadedAt, err = parseTime(uploadedAt, "uploaded_at"); err != nil {
		return nil, err
	}
	return &resume, nil
}
