package mock

import (
	"context"

	"github.com/fwojciec/jobsnap"
)

var (
	_ jobsnap.Browser = (*Browser)(nil)
	_ jobsnap.Tab     = (*Tab)(nil)
)

// Browser is a mock implementation of jobsnap.Browser.
type Browser struct {
	OpenFn  func(ctx context.Context, url string) (jobsnap.Tab, error)
	CloseFn func() error
}

func (b *Browser) Open(ctx context.Context, url string) (jobsnap.Tab, error) {
	return b.OpenFn(ctx, url)
}

func (b *Browser) Close() error {
	return b.CloseFn()
}

// Tab is a mock implementation of jobsnap.Tab.
type Tab struct {
	URLFn         func() string
	MaterializeFn func(ctx context.Context) error
	HTMLFn        func(ctx context.Context) (string, error)
	SelectionFn   func(ctx context.Context) (string, error)
	CloseFn       func() error
}

func (t *Tab) URL() string {
	return t.URLFn()
}

func (t *Tab) Materialize(ctx context.Context) error {
	return t.MaterializeFn(ctx)
}

func (t *Tab) HTML(ctx context.Context) (string, error) {
	return t.HTMLFn(ctx)
}

func (t *Tab) Selection(ctx context.Context) (string, error) {
	return t.SelectionFn(ctx)
}

func (t *Tab) Close() error {
	return t.CloseFn()
}
