package mock

import "github.com/fwojciec/jobsnap"

var _ jobsnap.FieldExtractor = (*FieldExtractor)(nil)

// FieldExtractor is a mock implementation of jobsnap.FieldExtractor.
type FieldExtractor struct {
	ExtractFn     func(site jobsnap.Site, html string) (*jobsnap.JobFields, error)
	VisibleTextFn func(html string) (string, error)
}

func (e *FieldExtractor) Extract(site jobsnap.Site, html string) (*jobsnap.JobFields, error) {
	return e.ExtractFn(site, html)
}

func (e *FieldExtractor) VisibleText(html string) (string, error) {
	return e.VisibleTextFn(html)
}
