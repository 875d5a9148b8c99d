// Package graphql implements jobsnap.Analyzer against the job analysis
// GraphQL backend.
package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/jobsnap"
)

// DefaultEndpoint is the backend URL used when none is configured.
const DefaultEndpoint = "http://127.0.0.1:8000/graphql"

// DefaultTimeout bounds one analysis request. Analysis runs a model on the
// backend, so it is far slower than a page load.
const DefaultTimeout = 2 * time.Minute

const analyzeJobMutation = `
mutation AnalyzeJob($title: String!, $company: String!, $location: String!, $description: String!, $resumeBase64: String!) {
  analyzeJob(
    title: $title,
    company: $company,
    location: $location,
    description: $description,
    resumeBase64: $resumeBase64
  ) {
    id
    analysis {
      matchScore
      fitSummary
      strengths
      missingSkills
      recommendations
      applicationEmail
    }
  }
}`

// Ensure Client implements jobsnap.Analyzer at compile time.
var _ jobsnap.Analyzer = (*Client)(nil)

// Client sends analyzeJob mutations to the backend.
type Client struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides DefaultEndpoint.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		c.endpoint = url
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a new Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.client = &http.Client{Timeout: c.timeout}
	return c
}

type request struct {
	Query     string                   `json:"query"`
	Variables *jobsnap.AnalysisRequest `json:"variables"`
}

type response struct {
	Data struct {
		AnalyzeJob *jobsnap.AnalysisResponse `json:"analyzeJob"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Analyze submits req and returns the backend's analysis. The first GraphQL
// error message is returned verbatim.
func (c *Client) Analyze(ctx context.Context, req *jobsnap.AnalysisRequest) (*jobsnap.AnalysisResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(request{Query: analyzeJobMutation, Variables: req})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, jobsnap.Errorf(jobsnap.EINVALID, "invalid endpoint %q: %v", c.endpoint, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("analysis request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analysis response: %w", err)
	}

	var out response
	if err := json.Unmarshal(raw, &out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, jobsnap.Errorf(jobsnap.EINTERNAL, "analysis backend returned HTTP %d", resp.StatusCode)
		}
		return nil, jobsnap.Errorf(jobsnap.EINTERNAL, "malformed analysis response: %v", err)
	}
	if len(out.Errors) > 0 {
		return nil, jobsnap.Errorf(jobsnap.EINTERNAL, "%s", out.Errors[0].Message)
	}
	if out.Data.AnalyzeJob == nil {
		return nil, jobsnap.Errorf(jobsnap.EINTERNAL, "analysis response has no data")
	}
	return out.Data.AnalyzeJob, nil
}
