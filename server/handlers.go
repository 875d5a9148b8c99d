package server

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/jobsnap"
)

// maxBodySize caps request bodies. Jobs carry full descriptions and HTML.
const maxBodySize = 4 << 20

// maxResumeBodySize fits a base64 data URL of the largest accepted resume.
const maxResumeBodySize = 16 << 20

type urlRequest struct {
	URL string `json:"url"`
}

type saveResumeRequest struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	Content  string `json:"content"`
}

type saveResumeResponse struct {
	Success     bool   `json:"success"`
	ResumeCount int    `json:"resumeCount,omitempty"`
	Error       string `json:"error,omitempty"`
}

type saveJobResponse struct {
	Success  bool   `json:"success"`
	JobCount int    `json:"jobCount,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (s *Server) handleScrapeJob(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := decode(w, r, &req); err != nil || req.URL == "" {
		respondJSON(w, http.StatusBadRequest, jobsnap.Failed("url required"))
		return
	}
	respondJSON(w, http.StatusOK, s.scraper.ScrapeJob(r.Context(), req.URL))
}

func (s *Server) handleCaptureSelection(w http.ResponseWriter, r *http.Request) {
	var req urlRequest
	if err := decode(w, r, &req); err != nil || req.URL == "" {
		respondJSON(w, http.StatusBadRequest, &jobsnap.SelectionOutcome{Error: "url required"})
		return
	}
	respondJSON(w, http.StatusOK, s.scraper.CaptureSelection(r.Context(), req.URL))
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.jobs.FindJobs(r.Context(), jobsnap.JobFilter{})
	if err != nil {
		respondError(w, err)
		return
	}
	if jobs == nil {
		jobs = []*jobsnap.Job{}
	}
	respondJSON(w, http.StatusOK, jobs)
}

func (s *Server) handleSaveJob(w http.ResponseWriter, r *http.Request) {
	var job jobsnap.Job
	if err := decode(w, r, &job); err != nil {
		respondJSON(w, http.StatusBadRequest, saveJobResponse{Error: "invalid job: " + err.Error()})
		return
	}
	// IDs and timestamps are assigned by storage.
	job.ID = ""
	job.FillMissing()

	if err := s.jobs.CreateJob(r.Context(), &job); err != nil {
		respondJSON(w, statusFor(err), saveJobResponse{Error: jobsnap.ErrorMessage(err)})
		return
	}

	jobs, err := s.jobs.FindJobs(r.Context(), jobsnap.JobFilter{})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, saveJobResponse{Success: true, JobCount: len(jobs)})
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := s.resumes.FindResumes(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if resumes == nil {
		resumes = []*jobsnap.Resume{}
	}
	respondJSON(w, http.StatusOK, resumes)
}

// handleSaveResume stores an uploaded resume and makes it the one used for
// analysis. Content is the file as a base64 data URL.
func (s *Server) handleSaveResume(w http.ResponseWriter, r *http.Request) {
	var req saveResumeRequest
	if err := decodeLimit(w, r, &req, maxResumeBodySize); err != nil {
		respondJSON(w, http.StatusBadRequest, saveResumeResponse{Error: "invalid resume: " + err.Error()})
		return
	}
	mimeType, content, err := jobsnap.ParseDataURL(req.Content)
	if err != nil {
		respondJSON(w, statusFor(err), saveResumeResponse{Error: jobsnap.ErrorMessage(err)})
		return
	}
	// Bare base64 carries no type; storage sniffs it instead.
	if req.FileType == "" && mimeType != "application/octet-stream" {
		req.FileType = mimeType
	}

	resume := &jobsnap.Resume{
		FileName: req.FileName,
		FileType: req.FileType,
		FileSize: int64(len(content)),
		Content:  content,
	}
	if err := s.resumes.CreateResume(r.Context(), resume); err != nil {
		respondJSON(w, statusFor(err), saveResumeResponse{Error: jobsnap.ErrorMessage(err)})
		return
	}
	if err := s.resumes.SetCurrentResume(r.Context(), resume.ID); err != nil {
		respondError(w, err)
		return
	}

	resumes, err := s.resumes.FindResumes(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, saveResumeResponse{Success: true, ResumeCount: len(resumes)})
}

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	return decodeLimit(w, r, v, maxBodySize)
}

func decodeLimit(w http.ResponseWriter, r *http.Request, v any, limit int64) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, limit)).Decode(v)
}

func statusFor(err error) int {
	switch jobsnap.ErrorCode(err) {
	case jobsnap.EINVALID:
		return http.StatusBadRequest
	case jobsnap.ENOTFOUND:
		return http.StatusNotFound
	case jobsnap.ECONFLICT:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	respondJSON(w, statusFor(err), map[string]any{
		"success": false,
		"error":   jobsnap.ErrorMessage(err),
	})
}
