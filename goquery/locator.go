package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobsnap"
)

// Locator identifies at most one element on a page. Either Selector or Node
// is set; the first element matched is used.
type Locator struct {
	// Selector is a CSS selector evaluated against the whole document.
	Selector string

	// Node finds the element with custom logic when a selector cannot.
	Node func(doc *goquery.Document) *goquery.Selection

	// Segment, when set, keeps only part of the element's text.
	// An empty segment counts as a miss.
	Segment func(text string) string
}

// Field is a prioritized locator chain for one job field.
type Field struct {
	Locators []Locator

	// Clean post-processes each candidate before it is checked.
	Clean func(text string) string

	// Accept rejects candidates that are present but wrong.
	Accept func(text string) bool
}

// Strategy holds the locator chains used to scrape one site.
type Strategy struct {
	Site        jobsnap.Site
	Title       Field
	Company     Field
	Location    Field
	Description Field
}

// Extract resolves every field of the strategy against doc. Fields whose
// chains produce nothing are left empty.
func (s *Strategy) Extract(doc *goquery.Document) *jobsnap.JobFields {
	fields := &jobsnap.JobFields{
		Title:    s.Title.resolve(doc, readText),
		Company:  s.Company.resolve(doc, readText),
		Location: s.Location.resolve(doc, readText),
	}
	fields.Description, fields.DescriptionHTML = s.Description.resolveContent(doc)
	return fields
}

// resolve walks the chain and returns the first accepted candidate.
func (f Field) resolve(doc *goquery.Document, read func(*goquery.Selection) string) string {
	for _, loc := range f.Locators {
		sel := loc.find(doc)
		if sel == nil {
			continue
		}
		if text, ok := f.candidate(loc, read(sel)); ok {
			return text
		}
	}
	return ""
}

// resolveContent is like resolve but reads through the noise filter and
// also returns the cleaned markup of the winning element.
func (f Field) resolveContent(doc *goquery.Document) (text, markup string) {
	for _, loc := range f.Locators {
		sel := loc.find(doc)
		if sel == nil {
			continue
		}
		cleaned := Clean(sel)
		t, ok := f.candidate(loc, readText(cleaned))
		if !ok {
			continue
		}
		m, err := goquery.OuterHtml(cleaned)
		if err != nil {
			m = ""
		}
		return t, m
	}
	return "", ""
}

func (f Field) candidate(loc Locator, text string) (string, bool) {
	if loc.Segment != nil && text != "" {
		text = jobsnap.Normalize(loc.Segment(text))
	}
	if f.Clean != nil && text != "" {
		text = strings.TrimSpace(f.Clean(text))
	}
	if text == "" {
		return "", false
	}
	if f.Accept != nil && !f.Accept(text) {
		return "", false
	}
	return text, true
}

// find returns the first matching element, or nil. A locator that panics
// is treated as a miss.
func (l Locator) find(doc *goquery.Document) (sel *goquery.Selection) {
	defer func() {
		if recover() != nil {
			sel = nil
		}
	}()

	switch {
	case l.Node != nil:
		sel = l.Node(doc)
	case l.Selector != "":
		sel = doc.Find(l.Selector)
	}
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	return sel.First()
}

// Selectors builds a locator chain from plain CSS selectors.
func Selectors(selectors ...string) []Locator {
	locators := make([]Locator, len(selectors))
	for i, s := range selectors {
		locators[i] = Locator{Selector: s}
	}
	return locators
}

// middleDots are the separators job boards use between inline facts.
// The CJK form appears when a page's middle dot is decoded with the wrong
// charset.
var middleDots = []string{"·", "路"}

// splitMiddleDot splits text on the first middle dot. ok is false when
// text has no middle dot.
func splitMiddleDot(text string) (before, after string, ok bool) {
	for _, dot := range middleDots {
		if b, a, found := strings.Cut(text, dot); found {
			return strings.TrimSpace(b), strings.TrimSpace(a), true
		}
	}
	return "", "", false
}

// BeforeMiddleDot keeps the text preceding the first middle dot.
func BeforeMiddleDot(text string) string {
	before, _, _ := splitMiddleDot(text)
	return before
}

// AfterMiddleDot keeps the text between the first and second middle dot.
func AfterMiddleDot(text string) string {
	_, after, ok := splitMiddleDot(text)
	if !ok {
		return ""
	}
	if next, _, found := splitMiddleDot(after); found {
		return next
	}
	return after
}

// StripMiddleDots removes middle dot separators from text.
func StripMiddleDots(text string) string {
	for _, dot := range middleDots {
		text = strings.ReplaceAll(text, dot, "")
	}
	return strings.TrimSpace(text)
}

// runeLen counts characters rather than bytes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
