package mock

import (
	"context"

	"github.com/fwojciec/jobsnap"
)

var _ jobsnap.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of jobsnap.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, req *jobsnap.AnalysisRequest) (*jobsnap.AnalysisResponse, error)
}

func (a *Analyzer) Analyze(ctx context.Context, req *jobsnap.AnalysisRequest) (*jobsnap.AnalysisResponse, error) {
	return a.AnalyzeFn(ctx, req)
}
