package rod

import (
	"context"
	"time"

	"github.com/fwojciec/jobsnap"
	"github.com/go-rod/rod"
)

var _ jobsnap.Tab = (*Tab)(nil)

// LazyLoadConfig is the scroll sequence that makes job boards render content
// they only load once it scrolls into view.
type LazyLoadConfig struct {
	// Steps is the number of downward scrolls.
	Steps int
	// StepPx is the distance of each scroll in CSS pixels.
	StepPx int
	// Interval is the pause before each scroll.
	Interval time.Duration
	// Settle is the pause after scrolling back to the top.
	Settle time.Duration
}

// DefaultLazyLoad scrolls three times by 300px, 150ms apart, then waits
// 200ms at the top of the page.
func DefaultLazyLoad() LazyLoadConfig {
	return LazyLoadConfig{
		Steps:    3,
		StepPx:   300,
		Interval: 150 * time.Millisecond,
		Settle:   200 * time.Millisecond,
	}
}

const (
	scrollByJS     = `(px) => window.scrollBy(0, px)`
	scrollTopJS    = `() => window.scrollTo(0, 0)`
	selectedTextJS = `() => { const s = window.getSelection(); return s ? s.toString() : "" }`
)

// Tab is a Chrome page owned by a single scrape.
type Tab struct {
	page     *rod.Page
	owned    bool
	lazyLoad LazyLoadConfig
}

// URL returns the current page URL, or an empty string when the page is gone.
func (t *Tab) URL() string {
	info, err := t.page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// Materialize runs the lazy-load scroll sequence. Pages without lazy content
// are unaffected; only cancellation or a dead page produce an error.
func (t *Tab) Materialize(ctx context.Context) error {
	page := t.page.Context(ctx)
	eval := func(js string, args ...any) error {
		_, err := page.Eval(js, args...)
		return err
	}
	return lazyLoad(ctx, t.lazyLoad, eval, sleep)
}

// lazyLoad pauses before each scroll step. The return to the top happens
// right after the last step, followed by the settle pause.
func lazyLoad(ctx context.Context, cfg LazyLoadConfig, eval func(js string, args ...any) error, pause func(context.Context, time.Duration) error) error {
	for range cfg.Steps {
		if err := pause(ctx, cfg.Interval); err != nil {
			return err
		}
		if err := eval(scrollByJS, cfg.StepPx); err != nil {
			return err
		}
	}
	if err := eval(scrollTopJS); err != nil {
		return err
	}
	return pause(ctx, cfg.Settle)
}

// HTML returns the page's current DOM serialized as HTML.
func (t *Tab) HTML(ctx context.Context) (string, error) {
	return t.page.Context(ctx).HTML()
}

// Selection returns the text currently selected in the page.
func (t *Tab) Selection(ctx context.Context) (string, error) {
	res, err := t.page.Context(ctx).Eval(selectedTextJS)
	if err != nil {
		return "", err
	}
	return res.Value.Str(), nil
}

// Close closes the page if this tab created it. Reused user tabs stay open.
func (t *Tab) Close() error {
	if !t.owned {
		return nil
	}
	return t.page.Close()
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
