package jobsnap

import (
	"context"
	"encoding/base64"
	"strings"
	"time"
)

// MaxResumeSize is the largest resume file accepted, in bytes.
const MaxResumeSize = 10 * 1024 * 1024

// Resume is an uploaded resume file.
type Resume struct {
	ID         string    `json:"id"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	FileSize   int64     `json:"fileSize"`
	Content    []byte    `json:"-"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// Validate returns an error if the resume contains invalid fields.
func (r *Resume) Validate() error {
	if r.FileName == "" {
		return Errorf(EINVALID, "resume file name required")
	}
	if len(r.Content) == 0 {
		return Errorf(EINVALID, "resume content required")
	}
	if len(r.Content) > MaxResumeSize {
		return Errorf(EINVALID, "resume exceeds %d MB limit", MaxResumeSize/(1024*1024))
	}
	return nil
}

// DataURL encodes the resume as a base64 data URL.
func (r *Resume) DataURL() string {
	fileType := r.FileType
	if fileType == "" {
		fileType = "application/octet-stream"
	}
	return "data:" + fileType + ";base64," + base64.StdEncoding.EncodeToString(r.Content)
}

// ParseDataURL decodes a base64 data URL into its MIME type and payload.
// Bare base64 without the data: prefix is accepted as application/octet-stream.
func ParseDataURL(s string) (mimeType string, data []byte, err error) {
	mimeType = "application/octet-stream"
	payload := s
	if rest, ok := strings.CutPrefix(s, "data:"); ok {
		header, body, found := strings.Cut(rest, ",")
		if !found {
			return "", nil, Errorf(EINVALID, "malformed data URL")
		}
		if !strings.HasSuffix(header, ";base64") {
			return "", nil, Errorf(EINVALID, "data URL is not base64 encoded")
		}
		if t := strings.TrimSuffix(header, ";base64"); t != "" {
			mimeType = t
		}
		payload = body
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, Errorf(EINVALID, "invalid base64 payload: %v", err)
	}
	return mimeType, data, nil
}

// ResumeService represents a service for managing resumes.
type ResumeService interface {
	// CreateResume saves a new resume.
	CreateResume(ctx context.Context, resume *Resume) error

	// FindResumeByID retrieves a resume by ID.
	// Returns ENOTFOUND if the resume does not exist.
	FindResumeByID(ctx context.Context, id string) (*Resume, error)

	// FindResumes retrieves all resumes, newest first.
	FindResumes(ctx context.Context) ([]*Resume, error)

	// SetCurrentResume marks the resume used for analysis.
	// Returns ENOTFOUND if the resume does not exist.
	SetCurrentResume(ctx context.Context, id string) error

	// CurrentResume returns the resume used for analysis.
	// Returns ENOTFOUND if no resume has been selected.
	CurrentResume(ctx context.Context) (*Resume, error)
}
