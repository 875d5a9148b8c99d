package goquery

import (
	"strings"

	"github.com/fwojciec/jobsnap"
)

// relativeTimeMarker appears in "3 days ago" style posting ages, which sit
// next to the location in LinkedIn's top card.
const relativeTimeMarker = "ago"

// NewLinkedInStrategy returns the strategy for linkedin.com job views.
// LinkedIn ships several top-card templates (guest view, logged-in view,
// search side panel), so each field lists the class names of every template.
// Location candidates of maxLocation characters or more are rejected.
func NewLinkedInStrategy(maxLocation int) *Strategy {
	return &Strategy{
		Site: jobsnap.SiteLinkedIn,
		Title: Field{
			Locators: Selectors(
				"h1",
				".jobs-unified-top-card__job-title",
				".job-details-jobs-unified-top-card__job-title",
			),
		},
		Company: Field{
			Locators: append(Selectors(
				".jobs-unified-top-card__company-name",
				".job-details-jobs-unified-top-card__company-name",
				".top-card-layout__first-subline a",
				".jobs-unified-top-card__company-name a",
				`[class*="company-name"]`,
			), Locator{
				// "Acme Corp · Remote" without a company link.
				Selector: ".top-card-layout__first-subline",
				Segment:  BeforeMiddleDot,
			}),
		},
		Location: Field{
			Locators: append(Selectors(
				".jobs-unified-top-card__bullet",
				".job-details-jobs-unified-top-card__bullet",
				".jobs-unified-top-card__workplace-type",
				".top-card-layout__first-subline span:nth-of-type(1)",
			), Locator{
				Selector: ".top-card-layout__first-subline",
				Segment:  AfterMiddleDot,
			}),
			Accept: func(text string) bool {
				return !strings.Contains(text, relativeTimeMarker) && runeLen(text) < maxLocation
			},
			Clean: StripMiddleDots,
		},
		Description: Field{
			Locators: Selectors(
				"#job-details",
				".jobs-description__content",
				".jobs-box__html-content",
			),
		},
	}
}
