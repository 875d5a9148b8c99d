package goquery

import "github.com/fwojciec/jobsnap"

// NewNaukriStrategy returns the strategy for naukri.com job views.
func NewNaukriStrategy() *Strategy {
	return &Strategy{
		Site: jobsnap.SiteNaukri,
		Title: Field{
			Locators: Selectors("h1", ".jd-header-title"),
		},
		Company: Field{
			Locators: Selectors(".jd-header-comp-name a", ".jd-header-comp-name"),
		},
		Location: Field{
			Locators: Selectors(".location", ".jd-header-loc", ".loc span"),
		},
		Description: Field{
			Locators: Selectors(".job-desc", ".description", ".job-description-content"),
		},
	}
}
