package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobsnap"
)

var _ jobsnap.FieldExtractor = (*Extractor)(nil)

// Extractor reads job fields from page HTML using per-site strategies.
type Extractor struct {
	registry *Registry
}

// NewExtractor creates an Extractor backed by registry. A nil registry
// means DefaultRegistry.
func NewExtractor(registry *Registry) *Extractor {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Extractor{registry: registry}
}

// Extract runs the strategy for site against html.
func (e *Extractor) Extract(site jobsnap.Site, html string) (*jobsnap.JobFields, error) {
	doc, err := parse(html)
	if err != nil {
		return nil, err
	}
	return e.registry.For(site).Extract(doc), nil
}

// VisibleText returns the noise-filtered text of the page body, or of the
// whole document when there is no body element.
func (e *Extractor) VisibleText(html string) (string, error) {
	doc, err := parse(html)
	if err != nil {
		return "", err
	}
	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	return VisibleText(body), nil
}

func parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobsnap.Errorf(jobsnap.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
