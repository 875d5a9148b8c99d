package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/fwojciec/jobsnap"
	"github.com/fwojciec/jobsnap/fs"
	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "acme-corp", fs.Slugify("Acme Corp."))
	assert.Equal(t, "c-developer-m-w-d", fs.Slugify("C++ Developer (m/w/d)"))
	assert.Equal(t, "etc-passwd", fs.Slugify("../../etc/passwd"))
	assert.Empty(t, fs.Slugify("!!!"))
}

func TestJobPath(t *testing.T) {
	t.Parallel()

	t.Run("site directory and slugged name", func(t *testing.T) {
		t.Parallel()

		job := &jobsnap.Job{ID: "abcdef0123", Title: "Data Engineer", Company: "Globex", Site: jobsnap.SiteNaukri}

		assert.Equal(t, filepath.Join("naukri", "globex-data-engineer-abcdef01.md"), fs.JobPath(job))
	})

	t.Run("defaults to generic site", func(t *testing.T) {
		t.Parallel()

		job := &jobsnap.Job{ID: "abc", Title: "Engineer"}

		assert.Equal(t, filepath.Join("generic", "engineer-abc.md"), fs.JobPath(job))
	})

	t.Run("names file job when nothing sluggable", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, filepath.Join("generic", "job.md"), fs.JobPath(&jobsnap.Job{}))
	})
}

func TestFormatJob(t *testing.T) {
	t.Parallel()

	t.Run("frontmatter and description", func(t *testing.T) {
		t.Parallel()

		out := fs.FormatJob(testExport())

		assert.Contains(t, out, "---\ntitle: Senior Go Engineer\n")
		assert.Contains(t, out, "company: Acme Corp\n")
		assert.Contains(t, out, "site: linkedin\n")
		assert.Contains(t, out, "source: https://www.linkedin.com/jobs/view/1\n")
		assert.Contains(t, out, "saved: 2026-03-04\n")
		assert.Contains(t, out, "# Senior Go Engineer\n\n## About\n\nBuild services.\n")
		assert.NotContains(t, out, "match_score")
		assert.NotContains(t, out, "## Analysis")
	})

	t.Run("quotes values YAML would misread", func(t *testing.T) {
		t.Parallel()

		export := testExport()
		export.Job.Title = "Engineer: Platform"
		export.Job.Status = jobsnap.StatusHighMatch

		out := fs.FormatJob(export)

		assert.Contains(t, out, `title: "Engineer: Platform"`)
		assert.Contains(t, out, "status: High Match\n")
	})

	t.Run("includes analysis", func(t *testing.T) {
		t.Parallel()

		export := testExport()
		export.Job.Analysis = &jobsnap.Analysis{MatchScore: 85, FitSummary: "Strong fit", Strengths: []string{"Go"}}

		out := fs.FormatJob(export)

		assert.Contains(t, out, "match_score: 85\n")
		assert.Contains(t, out, "## Analysis")
		assert.Contains(t, out, "Match Score: 85%")
		assert.Contains(t, out, "Strong fit")
	})
}
