package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobsnap"
	"github.com/markusmobius/go-trafilatura"
)

// NewGenericStrategy returns the fallback strategy for unknown sites. It
// relies on semantic HTML and common class name fragments, and as a last
// resort asks trafilatura where the main content is.
func NewGenericStrategy() *Strategy {
	return &Strategy{
		Site: jobsnap.SiteGeneric,
		Title: Field{
			Locators: Selectors("h1", "h2"),
		},
		Company: Field{
			Locators: Selectors(`[class*="company"]`, `[class*="employer"]`),
		},
		Location: Field{
			Locators: Selectors(`[class*="location"]`),
		},
		Description: Field{
			Locators: append(
				Selectors("article", "main", `[role="main"]`),
				Locator{Node: MainContent},
			),
		},
	}
}

// MainContent locates the main content of doc with trafilatura.
// The document is serialized first so trafilatura works on its own copy.
// Returns nil when no content is found.
func MainContent(doc *goquery.Document) *goquery.Selection {
	raw, err := doc.Html()
	if err != nil || strings.TrimSpace(raw) == "" {
		return nil
	}

	result, err := trafilatura.Extract(strings.NewReader(raw), trafilatura.Options{
		EnableFallback: true,
	})
	if err != nil || result == nil || result.ContentNode == nil {
		return nil
	}

	return goquery.NewDocumentFromNode(result.ContentNode).Selection
}
