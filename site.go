package jobsnap

import (
	"net/url"
	"strings"
)

// Site identifies a job portal with a dedicated extraction strategy.
type Site string

// Supported job portals.
const (
	SiteLinkedIn  Site = "linkedin"
	SiteGlassdoor Site = "glassdoor"
	SiteBdjobs    Site = "bdjobs"
	SiteNaukri    Site = "naukri"
	SiteGeneric   Site = "generic"
)

// siteHosts is checked in order; the first host fragment contained in the
// hostname wins.
var siteHosts = []struct {
	host string
	site Site
}{
	{"linkedin.com", SiteLinkedIn},
	{"glassdoor.com", SiteGlassdoor},
	{"bdjobs.com", SiteBdjobs},
	{"naukri.com", SiteNaukri},
}

// Sites returns every known portal followed by SiteGeneric.
func Sites() []Site {
	sites := make([]Site, 0, len(siteHosts)+1)
	for _, h := range siteHosts {
		sites = append(sites, h.site)
	}
	return append(sites, SiteGeneric)
}

// DetectSite classifies a hostname into a known portal.
// Returns SiteGeneric when no portal matches.
func DetectSite(hostname string) Site {
	hostname = strings.ToLower(hostname)
	for _, h := range siteHosts {
		if strings.Contains(hostname, h.host) {
			return h.site
		}
	}
	return SiteGeneric
}

// SiteForURL detects the portal for a full URL.
// Unparseable URLs are treated as generic pages.
func SiteForURL(rawURL string) Site {
	u, err := url.Parse(rawURL)
	if err != nil {
		return SiteGeneric
	}
	return DetectSite(u.Hostname())
}
