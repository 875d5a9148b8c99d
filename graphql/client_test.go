package graphql_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/jobsnap"
	"github.com/fwojciec/jobsnap/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *jobsnap.AnalysisRequest {
	return &jobsnap.AnalysisRequest{
		Title:        "Backend Engineer",
		Company:      "Acme",
		Location:     "Remote",
		Description:  "Build Go services.",
		ResumeBase64: "data:application/pdf;base64,JVBERi0=",
	}
}

func TestClient_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("sends mutation and decodes analysis", func(t *testing.T) {
		t.Parallel()

		type received struct {
			method      string
			contentType string
			query       string
			variables   map[string]string
		}
		got := make(chan received, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Query     string            `json:"query"`
				Variables map[string]string `json:"variables"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			got <- received{r.Method, r.Header.Get("Content-Type"), body.Query, body.Variables}

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":{"analyzeJob":{"id":"job-42","analysis":{
				"matchScore":88,"fitSummary":"Great fit","strengths":["Go"],
				"missingSkills":[],"recommendations":["Mention Kafka"],
				"applicationEmail":"Hello"}}}}`))
		}))
		defer srv.Close()

		client := graphql.NewClient(graphql.WithEndpoint(srv.URL))
		resp, err := client.Analyze(context.Background(), validRequest())

		require.NoError(t, err)
		assert.Equal(t, "job-42", resp.ID)
		assert.InDelta(t, 88.0, resp.Analysis.MatchScore, 0.001)
		assert.Equal(t, "Great fit", resp.Analysis.FitSummary)
		assert.Equal(t, []string{"Go"}, resp.Analysis.Strengths)
		assert.Equal(t, []string{"Mention Kafka"}, resp.Analysis.Recommendations)

		r := <-got
		assert.Equal(t, http.MethodPost, r.method)
		assert.Equal(t, "application/json", r.contentType)
		assert.Contains(t, r.query, "analyzeJob(")
		assert.Equal(t, "Backend Engineer", r.variables["title"])
		assert.Equal(t, "Acme", r.variables["company"])
		assert.Equal(t, "Remote", r.variables["location"])
		assert.Equal(t, "data:application/pdf;base64,JVBERi0=", r.variables["resumeBase64"])
	})

	t.Run("surfaces first GraphQL error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":null,"errors":[{"message":"resume unreadable"},{"message":"second"}]}`))
		}))
		defer srv.Close()

		_, err := graphql.NewClient(graphql.WithEndpoint(srv.URL)).Analyze(context.Background(), validRequest())

		require.Error(t, err)
		assert.Equal(t, "resume unreadable", jobsnap.ErrorMessage(err))
	})

	t.Run("reports non-JSON error status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		}))
		defer srv.Close()

		_, err := graphql.NewClient(graphql.WithEndpoint(srv.URL)).Analyze(context.Background(), validRequest())

		assert.Equal(t, jobsnap.EINTERNAL, jobsnap.ErrorCode(err))
		assert.Contains(t, jobsnap.ErrorMessage(err), "HTTP 502")
	})

	t.Run("reports missing data", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":{"analyzeJob":null}}`))
		}))
		defer srv.Close()

		_, err := graphql.NewClient(graphql.WithEndpoint(srv.URL)).Analyze(context.Background(), validRequest())

		assert.Equal(t, jobsnap.EINTERNAL, jobsnap.ErrorCode(err))
	})

	t.Run("validates request before sending", func(t *testing.T) {
		t.Parallel()

		called := make(chan struct{}, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called <- struct{}{}
		}))
		defer srv.Close()

		req := validRequest()
		req.ResumeBase64 = ""
		_, err := graphql.NewClient(graphql.WithEndpoint(srv.URL)).Analyze(context.Background(), req)

		assert.Equal(t, jobsnap.EINVALID, jobsnap.ErrorCode(err))
		assert.Empty(t, called)
	})

	t.Run("times out slow backend", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer srv.Close()

		client := graphql.NewClient(graphql.WithEndpoint(srv.URL), graphql.WithTimeout(50*time.Millisecond))
		_, err := client.Analyze(context.Background(), validRequest())

		require.Error(t, err)
	})
}
