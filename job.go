package jobsnap

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// JobStatus tracks where a saved job is in the review flow.
type JobStatus string

// Job statuses.
const (
	StatusNew       JobStatus = "New"
	StatusHighMatch JobStatus = "High Match"
	StatusReview    JobStatus = "Review"
)

// HighMatchScore is the match score above which a job is a high match.
const HighMatchScore = 70

// Placeholders shown when company or location cannot be determined.
const (
	UnknownCompany  = "Unknown"
	UnknownLocation = "Not specified"
)

// StatusForScore returns the status a job gets after analysis.
func StatusForScore(score float64) JobStatus {
	if score > HighMatchScore {
		return StatusHighMatch
	}
	return StatusReview
}

// Job is a saved job posting.
type Job struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"descriptionHtml,omitempty"`
	URL             string    `json:"url"`
	Site            Site      `json:"site"`
	Status          JobStatus `json:"status"`
	Analysis        *Analysis `json:"analysis,omitempty"`
	ContentHash     string    `json:"contentHash"`
	ScrapedAt       time.Time `json:"scrapedAt"`
	SavedAt         time.Time `json:"savedAt"`
}

// NewJob builds an unsaved job from a scrape result.
func NewJob(r *ScrapeResult) *Job {
	return &Job{
		Title:           r.Title,
		Company:         r.Company,
		Location:        r.Location,
		Description:     r.Description,
		DescriptionHTML: r.DescriptionHTML,
		URL:             r.URL,
		Site:            r.Site,
		Status:          StatusNew,
		ScrapedAt:       r.Timestamp,
	}
}

// Validate returns an error if the job contains invalid fields.
func (j *Job) Validate() error {
	if utf8.RuneCountInString(j.Title) < MinTitleLength {
		return Errorf(EINVALID, "job title required")
	}
	if j.Description == "" {
		return Errorf(EINVALID, "job description required")
	}
	return nil
}

// FillMissing guesses company and location from the description when the
// scrape left them empty.
func (j *Job) FillMissing() {
	if j.Company == "" || j.Company == UnknownCompany {
		j.Company = GuessCompany(j.Description)
	}
	if j.Location == "" || j.Location == UnknownLocation {
		j.Location = GuessLocation(j.Description)
	}
	if j.Status == "" {
		j.Status = StatusNew
	}
}

var (
	companyLabelRe  = regexp.MustCompile(`(?i)(?:company|employer):\s*([A-Z][A-Za-z0-9\s&]{2,30})`)
	locationLabelRe = regexp.MustCompile(`(?i)(?:location|based in):\s*([A-Z][A-Za-z\s,]{2,40})`)
)

// GuessCompany looks for a "Company:" or "Employer:" label in text.
// Returns UnknownCompany when there is none.
func GuessCompany(text string) string {
	if m := companyLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return UnknownCompany
}

// GuessLocation looks for a "Location:" or "Based in:" label in text.
// Returns UnknownLocation when there is none.
func GuessLocation(text string) string {
	if m := locationLabelRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return UnknownLocation
}

// JobService represents a service for managing saved jobs.
type JobService interface {
	// CreateJob saves a new job.
	// Returns ECONFLICT if a job with the same URL and content already exists.
	CreateJob(ctx context.Context, job *Job) error

	// FindJobByID retrieves a job by ID.
	// Returns ENOTFOUND if the job does not exist.
	FindJobByID(ctx context.Context, id string) (*Job, error)

	// FindJobs retrieves jobs matching the filter, newest first.
	FindJobs(ctx context.Context, filter JobFilter) ([]*Job, error)

	// UpdateJob updates an existing job.
	// Returns ENOTFOUND if the job does not exist.
	UpdateJob(ctx context.Context, id string, upd JobUpdate) (*Job, error)

	// DeleteJob permanently removes a job.
	// Returns ENOTFOUND if the job does not exist.
	DeleteJob(ctx context.Context, id string) error
}

// JobFilter represents a filter for FindJobs.
type JobFilter struct {
	ID     *string    `json:"id"`
	URL    *string    `json:"url"`
	Site   *Site      `json:"site"`
	Status *JobStatus `json:"status"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// JobUpdate represents fields that can be updated on a job.
type JobUpdate struct {
	Title       *string    `json:"title"`
	Company     *string    `json:"company"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
	Status      *JobStatus `json:"status"`
	Analysis    *Analysis  `json:"analysis"`
}
