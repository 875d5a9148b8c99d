package rod

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/jobsnap"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Browser implements jobsnap.Browser at compile time.
var _ jobsnap.Browser = (*Browser)(nil)

// DefaultPageTimeout bounds navigation and load of a job page.
const DefaultPageTimeout = 30 * time.Second

// Browser opens job pages in Chrome. Every Open gets its own tab, so one
// Browser can serve concurrent scrapes.
type Browser struct {
	manager     *BrowserManager
	lazyLoad    LazyLoadConfig
	pageTimeout time.Duration
	managerOpts []ManagerOption
}

// Option configures a Browser.
type Option func(*Browser)

// WithLazyLoad overrides the scroll sequence used by Tab.Materialize.
func WithLazyLoad(cfg LazyLoadConfig) Option {
	return func(b *Browser) {
		b.lazyLoad = cfg
	}
}

// WithPageTimeout sets the maximum time to navigate to and load a page.
// Defaults to DefaultPageTimeout.
func WithPageTimeout(d time.Duration) Option {
	return func(b *Browser) {
		b.pageTimeout = d
	}
}

// WithManagerOptions passes options to the underlying BrowserManager.
func WithManagerOptions(opts ...ManagerOption) Option {
	return func(b *Browser) {
		b.managerOpts = append(b.managerOpts, opts...)
	}
}

// NewBrowser connects to Chrome as configured by opts.
// Close must be called when the Browser is no longer needed.
func NewBrowser(opts ...Option) (*Browser, error) {
	b := &Browser{
		lazyLoad:    DefaultLazyLoad(),
		pageTimeout: DefaultPageTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}

	manager, err := NewBrowserManager(b.managerOpts...)
	if err != nil {
		return nil, err
	}
	b.manager = manager
	return b, nil
}

// Open returns a tab showing url. When attached to the user's Chrome and a
// tab already shows url, that tab is reused as is so that live state such as
// the user's text selection is preserved. Otherwise a new tab is created and
// loaded.
func (b *Browser) Open(ctx context.Context, url string) (jobsnap.Tab, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b.manager.Closed() {
		return nil, jobsnap.Errorf(jobsnap.EINVALID, "browser is closed")
	}

	browser := b.manager.Browser()

	if b.manager.Attached() {
		if page := findPage(browser, url); page != nil {
			return &Tab{page: page, lazyLoad: b.lazyLoad}, nil
		}
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	b.manager.IncrementPageCount()

	loadCtx, cancel := context.WithTimeout(ctx, b.pageTimeout)
	defer cancel()

	loading := page.Context(loadCtx)
	if err := loading.Navigate(url); err != nil {
		_ = page.Close()
		return nil, err
	}
	if err := loading.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, err
	}

	return &Tab{page: page, owned: true, lazyLoad: b.lazyLoad}, nil
}

// Close releases browser resources.
func (b *Browser) Close() error {
	return b.manager.Close()
}

// findPage returns the open page whose URL matches url, ignoring a trailing
// slash, or nil.
func findPage(browser *rod.Browser, url string) *rod.Page {
	pages, err := browser.Pages()
	if err != nil {
		return nil
	}
	want := strings.TrimSuffix(url, "/")
	for _, page := range pages {
		info, err := page.Info()
		if err != nil {
			continue
		}
		if strings.TrimSuffix(info.URL, "/") == want {
			return page
		}
	}
	return nil
}
