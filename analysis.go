package jobsnap

import "context"

// Analysis is the backend's assessment of a resume against a job.
type Analysis struct {
	MatchScore       float64  `json:"matchScore"`
	FitSummary       string   `json:"fitSummary"`
	Strengths        []string `json:"strengths"`
	MissingSkills    []string `json:"missingSkills"`
	Recommendations  []string `json:"recommendations"`
	ApplicationEmail string   `json:"applicationEmail"`
}

// AnalysisRequest carries a job and a resume to the analysis backend.
type AnalysisRequest struct {
	Title        string `json:"title"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	Description  string `json:"description"`
	ResumeBase64 string `json:"resumeBase64"`
}

// NewAnalysisRequest builds a request for job using resume.
func NewAnalysisRequest(job *Job, resume *Resume) *AnalysisRequest {
	return &AnalysisRequest{
		Title:        job.Title,
		Company:      job.Company,
		Location:     job.Location,
		Description:  job.Description,
		ResumeBase64: resume.DataURL(),
	}
}

// Validate returns an error if the request is missing required fields.
func (r *AnalysisRequest) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "job title required")
	}
	if r.Description == "" {
		return Errorf(EINVALID, "job description required")
	}
	if r.ResumeBase64 == "" {
		return Errorf(EINVALID, "resume required")
	}
	return nil
}

// AnalysisResponse is the backend's reply to an AnalysisRequest.
type AnalysisResponse struct {
	ID       string   `json:"id"`
	Analysis Analysis `json:"analysis"`
}

// Analyzer submits jobs to an analysis backend.
// Errors are returned verbatim and are not retried.
type Analyzer interface {
	Analyze(ctx context.Context, req *AnalysisRequest) (*AnalysisResponse, error)
}

// TokenCounter counts tokens in text for a specific model.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
