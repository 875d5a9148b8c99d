package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/jobsnap"
)

var (
	deadlineRe     = regexp.MustCompile(`(?i)Application Deadline:.*`)
	companyLabelRe = regexp.MustCompile(`(?i)Company Info:?`)
)

// NewBdjobsStrategy returns the strategy for bdjobs.com job views.
// Bdjobs renders the application deadline inside the title heading and
// prefixes the employer block with a "Company Info" label.
func NewBdjobsStrategy() *Strategy {
	return &Strategy{
		Site: jobsnap.SiteBdjobs,
		Title: Field{
			Locators: Selectors("h1", ".job-title", ".job-header h2"),
			Clean:    StripDeadline,
		},
		Company: Field{
			Locators: Selectors(".company-name", ".top-header h2", ".job-header h3"),
			Clean:    StripCompanyLabel,
		},
		Location: Field{
			Locators: Selectors(".location", ".job-location", ".loc"),
		},
		Description: Field{
			Locators: Selectors(
				".job-details",
				".description-content",
				".job-desc-info",
				".job-description",
			),
		},
	}
}

// StripDeadline removes an "Application Deadline: ..." suffix.
func StripDeadline(text string) string {
	return strings.TrimSpace(deadlineRe.ReplaceAllString(text, ""))
}

// StripCompanyLabel removes a "Company Info:" label.
func StripCompanyLabel(text string) string {
	return strings.TrimSpace(companyLabelRe.ReplaceAllString(text, ""))
}
