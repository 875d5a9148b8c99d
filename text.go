package jobsnap

import (
	"regexp"
	"strings"
)

var (
	scriptRe = regexp.MustCompile(`(?is)<script\b.*?</script\s*>`)
	styleRe  = regexp.MustCompile(`(?is)<style\b.*?</style\s*>`)

	// Matches what a browser treats as whitespace, not just ASCII.
	spaceRe = regexp.MustCompile(`[\s\v\p{Z}\x{feff}]+`)
	breakRe = regexp.MustCompile(`[\r\n]+`)
)

// Normalize strips embedded script and style markup from raw text and
// collapses whitespace. Callers normally pass already-rendered text; the
// markup removal only matters when raw HTML slips through.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := scriptRe.ReplaceAllString(raw, "")
	s = styleRe.ReplaceAllString(s, "")
	s = spaceRe.ReplaceAllString(s, " ")
	s = breakRe.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
