package goquery

import (
	"regexp"
	"strings"

	"github.com/fwojciec/jobsnap"
)

// ratingSuffixRe matches the employer rating Glassdoor renders after the
// company name, e.g. "Acme Inc. 4.5".
var ratingSuffixRe = regexp.MustCompile(`[\d.]+\s*$`)

// NewGlassdoorStrategy returns the strategy for glassdoor.com job views.
func NewGlassdoorStrategy() *Strategy {
	return &Strategy{
		Site: jobsnap.SiteGlassdoor,
		Title: Field{
			Locators: Selectors("h1", `[data-test="jobTitle"]`),
		},
		Company: Field{
			Locators: Selectors(
				`[data-test="employer-name"]`,
				".JobDetails_jobTitleWrapper__7u9G9",
				".employerName",
			),
			Clean: StripRating,
		},
		Location: Field{
			Locators: Selectors(
				`[data-test="location"]`,
				".JobDetails_location__m_ni3",
				".location",
			),
			Clean: StripMiddleDots,
		},
		Description: Field{
			Locators: Selectors(
				".jobDescriptionContent",
				"#JobDescriptionContainer",
				`[data-test="jobDescription"]`,
			),
		},
	}
}

// StripRating removes a trailing numeric rating from a company name.
func StripRating(text string) string {
	return strings.TrimSpace(ratingSuffixRe.ReplaceAllString(text, ""))
}
