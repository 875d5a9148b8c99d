package fs

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/jobsnap"
)

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases s and joins its alphanumeric runs with dashes.
func Slugify(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// JobPath returns the export path of job relative to the output directory:
// site/company-title-id.md, with the ID shortened to eight characters.
func JobPath(job *jobsnap.Job) string {
	site := string(job.Site)
	if site == "" {
		site = string(jobsnap.SiteGeneric)
	}

	id := job.ID
	if len(id) > 8 {
		id = id[:8]
	}

	var parts []string
	for _, p := range []string{job.Company, job.Title, id} {
		if slug := Slugify(p); slug != "" {
			parts = append(parts, slug)
		}
	}
	name := strings.Join(parts, "-")
	if name == "" {
		name = "job"
	}
	return filepath.Join(Slugify(site), name+".md")
}

// FormatJob renders an export with YAML frontmatter, the description and,
// when the job was analyzed, the analysis.
func FormatJob(export *jobsnap.JobExport) string {
	job := export.Job

	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %s\n", yamlString(job.Title))
	fmt.Fprintf(&b, "company: %s\n", yamlString(job.Company))
	fmt.Fprintf(&b, "location: %s\n", yamlString(job.Location))
	fmt.Fprintf(&b, "site: %s\n", job.Site)
	fmt.Fprintf(&b, "source: %s\n", job.URL)
	fmt.Fprintf(&b, "status: %s\n", yamlString(string(job.Status)))
	if job.Analysis != nil {
		fmt.Fprintf(&b, "match_score: %g\n", job.Analysis.MatchScore)
	}
	if !job.SavedAt.IsZero() {
		fmt.Fprintf(&b, "saved: %s\n", job.SavedAt.Format("2006-01-02"))
	}
	b.WriteString("---\n\n")

	fmt.Fprintf(&b, "# %s\n\n", job.Title)
	b.WriteString(strings.TrimSpace(export.Markdown))
	b.WriteString("\n")

	if job.Analysis != nil {
		b.WriteString("\n## Analysis\n\n")
		b.WriteString(jobsnap.FormatAnalysis(job.Analysis))
		b.WriteString("\n")
	}
	return b.String()
}

// yamlString quotes s when it would not survive as a plain YAML scalar.
func yamlString(s string) string {
	if s == "" || strings.ContainsAny(s, ":#\"'{}[],&*!|>%@`") || strings.TrimSpace(s) != s {
		return fmt.Sprintf("%q", s)
	}
	return s
}
