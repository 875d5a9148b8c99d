// Package gemini implements job analysis and token counting on Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/jobsnap"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for analysis.
const DefaultModel = "gemini-2.5-flash"

// Ensure Analyzer implements jobsnap.Analyzer at compile time.
var _ jobsnap.Analyzer = (*Analyzer)(nil)

// Analyzer implements jobsnap.Analyzer using Google Gemini. The resume is
// attached to the prompt as inline file data and the model is constrained
// to answer with an Analysis JSON object.
type Analyzer struct {
	client    *genai.Client
	model     string
	counter   jobsnap.TokenCounter
	maxTokens int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithModel overrides DefaultModel.
func WithModel(model string) Option {
	return func(a *Analyzer) {
		a.model = model
	}
}

// WithTokenLimit rejects requests whose text prompt exceeds max tokens as
// counted by counter, before any API call is made.
func WithTokenLimit(counter jobsnap.TokenCounter, max int) Option {
	return func(a *Analyzer) {
		a.counter = counter
		a.maxTokens = max
	}
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(client *genai.Client, opts ...Option) *Analyzer {
	a := &Analyzer{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scores the resume in req against the job in req.
func (a *Analyzer) Analyze(ctx context.Context, req *jobsnap.AnalysisRequest) (*jobsnap.AnalysisResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	mimeType, resume, err := jobsnap.ParseDataURL(req.ResumeBase64)
	if err != nil {
		return nil, err
	}

	prompt := BuildUserPrompt(req)
	if a.counter != nil && a.maxTokens > 0 {
		n, err := a.counter.CountTokens(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if n > a.maxTokens {
			return nil, jobsnap.Errorf(jobsnap.EINVALID, "job posting too long: %d tokens exceeds limit of %d", n, a.maxTokens)
		}
	}

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{genai.NewContentFromParts([]*genai.Part{
			{Text: prompt},
			{InlineData: &genai.Blob{MIMEType: mimeType, Data: resume}},
		}, genai.RoleUser)},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, jobsnap.Errorf(jobsnap.EINTERNAL, "gemini returned nil result")
	}

	analysis, err := ParseAnalysis(result.Text())
	if err != nil {
		return nil, err
	}

	return &jobsnap.AnalysisResponse{
		ID:       uuid.New().String(),
		Analysis: *analysis,
	}, nil
}

// BuildConfig returns the GenerateContentConfig for analysis calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a career advisor comparing a candidate's resume with a job posting. " +
					"Score the match from 0 to 100, summarize the fit, list strengths and missing skills, " +
					"recommend how to improve the application, and draft a short application email. " +
					"Base every statement on the resume and posting provided.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   analysisSchema(),
	}
}

func analysisSchema() *genai.Schema {
	list := &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"matchScore":       {Type: genai.TypeNumber, Description: "Match score from 0 to 100."},
			"fitSummary":       {Type: genai.TypeString},
			"strengths":        list,
			"missingSkills":    list,
			"recommendations":  list,
			"applicationEmail": {Type: genai.TypeString},
		},
		Required: []string{"matchScore", "fitSummary", "strengths", "missingSkills", "recommendations", "applicationEmail"},
		PropertyOrdering: []string{
			"matchScore", "fitSummary", "strengths", "missingSkills", "recommendations", "applicationEmail",
		},
	}
}

// BuildUserPrompt builds the text part of the prompt describing the job.
func BuildUserPrompt(req *jobsnap.AnalysisRequest) string {
	var sb strings.Builder
	sb.WriteString("<job>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", req.Title)
	fmt.Fprintf(&sb, "<company>%s</company>\n", req.Company)
	fmt.Fprintf(&sb, "<location>%s</location>\n", req.Location)
	fmt.Fprintf(&sb, "<description>%s</description>\n", req.Description)
	sb.WriteString("</job>\n\n")
	sb.WriteString("The candidate's resume is attached.")
	return sb.String()
}

// ParseAnalysis decodes the model's JSON answer. Scores outside 0..100 are
// clamped.
func ParseAnalysis(text string) (*jobsnap.Analysis, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	var a jobsnap.Analysis
	if err := json.Unmarshal([]byte(text), &a); err != nil {
		return nil, jobsnap.Errorf(jobsnap.EINTERNAL, "gemini returned malformed analysis: %v", err)
	}
	a.MatchScore = min(max(a.MatchScore, 0), 100)
	return &a, nil
}
