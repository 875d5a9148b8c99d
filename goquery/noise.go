package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobsnap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// noiseRule selects page furniture that never belongs to a job description.
type noiseRule struct {
	selector string
	match    func(*goquery.Selection) bool
}

// noiseRules are applied in order to a cloned subtree. Each rule is
// best-effort: a rule that fails is skipped and the rest still run.
var noiseRules = []noiseRule{
	{selector: "script"},
	{selector: "style"},
	{selector: "noscript"},
	{selector: "iframe"},
	{selector: "svg"},
	{selector: "nav"},
	{selector: "footer"},
	{selector: "header"},
	{selector: "button"},
	{selector: "input"},
	{selector: "select"},
	{selector: "form"},
	{selector: `[class*="cookie"]`},
	{selector: `[class*="banner"]`},
	{selector: `[class*="advertisement"]`},
	{selector: `[class*="ad-"]`},
	{selector: `[class*="social-share"]`},
	{selector: "[style]", match: hiddenByStyle},
	{selector: `a[href*="apply"]`},
}

// Clean returns a deep copy of the first element in sel with noise elements
// removed. The original document is never modified. Returns nil for an
// empty selection.
func Clean(sel *goquery.Selection) *goquery.Selection {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	clone := sel.First().Clone()
	for _, rule := range noiseRules {
		removeNoise(clone, rule)
	}
	return clone
}

func removeNoise(sel *goquery.Selection, rule noiseRule) {
	defer func() { _ = recover() }()

	matches := sel.Find(rule.selector)
	if rule.match != nil {
		matches = matches.FilterFunction(func(_ int, s *goquery.Selection) bool {
			return rule.match(s)
		})
	}
	matches.Remove()
}

// VisibleText returns the normalized visible text of the first element in
// sel after noise removal. Returns an empty string for an empty selection.
func VisibleText(sel *goquery.Selection) string {
	return readText(Clean(sel))
}

// readText returns the normalized rendered text of the first element in sel,
// falling back to its raw text content when nothing renders.
func readText(sel *goquery.Selection) string {
	if sel == nil || sel.Length() == 0 {
		return ""
	}
	first := sel.First()
	text := renderedText(first.Nodes[0])
	if strings.TrimSpace(text) == "" {
		text = first.Text()
	}
	return jobsnap.Normalize(text)
}

// blockElements start and end on their own line when rendered.
var blockElements = map[atom.Atom]bool{
	atom.Address:    true,
	atom.Article:    true,
	atom.Aside:      true,
	atom.Blockquote: true,
	atom.Dd:         true,
	atom.Div:        true,
	atom.Dl:         true,
	atom.Dt:         true,
	atom.Figcaption: true,
	atom.Figure:     true,
	atom.Footer:     true,
	atom.Form:       true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Header:     true,
	atom.Hr:         true,
	atom.Li:         true,
	atom.Main:       true,
	atom.Nav:        true,
	atom.Ol:         true,
	atom.P:          true,
	atom.Pre:        true,
	atom.Section:    true,
	atom.Table:      true,
	atom.Tr:         true,
	atom.Ul:         true,
}

// renderedText approximates what a browser renders for n: hidden and
// non-rendering elements are skipped and block boundaries become line breaks.
func renderedText(n *html.Node) string {
	var b strings.Builder
	writeRendered(&b, n)
	return b.String()
}

func writeRendered(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode, html.DoctypeNode:
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript, atom.Template, atom.Head, atom.Title:
			return
		case atom.Br:
			b.WriteByte('\n')
			return
		case atom.Td, atom.Th:
			b.WriteByte('\t')
		}
		if isHidden(n) {
			return
		}
	}

	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeRendered(b, c)
	}
	if block {
		b.WriteByte('\n')
	}
}

func isHidden(n *html.Node) bool {
	for _, a := range n.Attr {
		switch a.Key {
		case "hidden":
			return true
		case "style":
			if styleHides(a.Val) {
				return true
			}
		}
	}
	return false
}

func hiddenByStyle(s *goquery.Selection) bool {
	style, _ := s.Attr("style")
	return styleHides(style)
}

// styleHides reports whether an inline style hides its element.
func styleHides(style string) bool {
	compact := strings.ToLower(strings.Join(strings.Fields(style), ""))
	return strings.Contains(compact, "display:none") ||
		strings.Contains(compact, "visibility:hidden")
}
