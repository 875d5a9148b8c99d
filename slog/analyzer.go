package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobsnap"
)

// Ensure LoggingAnalyzer implements jobsnap.Analyzer.
var _ jobsnap.Analyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps an Analyzer with logging. The resume payload is
// never logged.
type LoggingAnalyzer struct {
	next   jobsnap.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next jobsnap.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the operation.
func (a *LoggingAnalyzer) Analyze(ctx context.Context, req *jobsnap.AnalysisRequest) (resp *jobsnap.AnalysisResponse, err error) {
	defer func(begin time.Time) {
		var score float64
		if resp != nil {
			score = resp.Analysis.MatchScore
		}
		a.logger.Info("analyze",
			"title", req.Title,
			"company", req.Company,
			"score", score,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(ctx, req)
}
