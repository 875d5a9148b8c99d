package jobsnap

import (
	"fmt"
	"strings"
	"time"
)

// FormatJob formats a job's details as plain text for copying.
func FormatJob(job *Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Title: %s\n\n", job.Title)
	fmt.Fprintf(&b, "Company: %s\n\n", job.Company)
	fmt.Fprintf(&b, "Location: %s\n\n", job.Location)
	fmt.Fprintf(&b, "Description:\n%s", job.Description)
	return b.String()
}

// FormatAnalysis formats an analysis for display.
// Returns an empty string when analysis is nil.
func FormatAnalysis(a *Analysis) string {
	if a == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Match Score: %g%%\n\n", a.MatchScore)
	fmt.Fprintf(&b, "Fit Summary:\n%s\n\n", a.FitSummary)
	writeList(&b, "Key Strengths", a.Strengths)
	if len(a.MissingSkills) == 0 {
		b.WriteString("Missing Skills:\n  None identified\n\n")
	} else {
		writeList(&b, "Missing Skills", a.MissingSkills)
	}
	writeList(&b, "Recommendations", a.Recommendations)
	fmt.Fprintf(&b, "Application Email:\n%s", a.ApplicationEmail)
	return b.String()
}

func writeList(b *strings.Builder, heading string, items []string) {
	b.WriteString(heading + ":\n")
	for _, item := range items {
		b.WriteString("  - " + item + "\n")
	}
	b.WriteString("\n")
}

// TimeAgo renders the time elapsed between t and now in a compact form:
// "just now", "5m ago", "3h ago", "2d ago", or a date after a week.
func TimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d/time.Minute))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d/time.Hour))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d/(24*time.Hour)))
	}
	return t.Format("2006-01-02")
}
