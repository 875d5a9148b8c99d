package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobsnap"
)

// Ensure LoggingBrowser implements jobsnap.Browser.
var _ jobsnap.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with page load logging.
type LoggingBrowser struct {
	next   jobsnap.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next jobsnap.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// Open logs the page load and delegates to the wrapped browser.
func (b *LoggingBrowser) Open(ctx context.Context, url string) (tab jobsnap.Tab, err error) {
	defer func(begin time.Time) {
		b.logger.Info("open",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Open(ctx, url)
}

// Close delegates to the wrapped browser.
func (b *LoggingBrowser) Close() error {
	return b.next.Close()
}
