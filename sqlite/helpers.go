package sqlite

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobsnap"
)

// timeLayout is fixed width so stored timestamps sort as strings, and keeps
// nanoseconds so jobs saved within the same second still order correctly.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp, naming the field on failure.
func parseTime(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder if values are > 0.
// SQLite requires a LIMIT before OFFSET, so an offset alone uses LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// hashJob computes the xxHash of the fields that identify a posting's
// content, as a hex string.
func hashJob(job *jobsnap.Job) string {
	h := xxhash.New()
	for _, s := range []string{job.Title, job.Company, job.Location, job.Description} {
		_, _ = h.WriteString(s)
		_, _ = h.WriteString("\x00")
	}
	return hex.EncodeToString(h.Sum(nil))
}

// encodeAnalysis stores an analysis as JSON. nil is stored as NULL.
func encodeAnalysis(a *jobsnap.Analysis) (any, error) {
	if a == nil {
		return nil, nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}
	return string(b), nil
}

func decodeAnalysis(value *string) (*jobsnap.Analysis, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	var a jobsnap.Analysis
	if err := json.Unmarshal([]byte(*value), &a); err != nil {
		return nil, fmt.Errorf("failed to decode analysis: %w", err)
	}
	return &a, nil
}
