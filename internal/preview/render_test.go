package preview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wsjobs/go-job-board/internal/jobs"
)

func testRenderer(t *testing.T) *Renderer {
	renderer, err := NewRenderer(Config{
		SiteName:     "Western Sydney Jobs",
		PreviewImage: "https://example.com/preview.jpeg",
	})
	require.NoError(t, err)
	return renderer
}

func TestRenderJob(t *testing.T) {
	renderer := testRenderer(t)

	job := jobs.Job{
		Title:       "Registered Nurse",
		Company:     "Blacktown Hospital",
		Location:    "Blacktown",
		Description: strings.Repeat("A", 300),
		Slug:        "registered-nurse",
		Categories:  []jobs.Category{jobs.CategoryHealthcare},
		CompanyLogo: "https://example.com/logo.png",
	}

	html, err := renderer.RenderJob(job, "westernsydney.jobs")
	require.NoError(t, err)

	// og:title carries the site-branded job title
	require.Contains(t, html,
		`<meta property="og:title" content="Registered Nurse at Blacktown Hospital - Western Sydney Jobs" />`)

	// meta description truncates the description to 150 characters plus ellipsis
	expectedDescription := "Registered Nurse position at Blacktown Hospital in Blacktown. " +
		strings.Repeat("A", 150) + "..."
	require.Contains(t, html, `<meta name="description" content="`+expectedDescription+`" />`)

	// the visible preview card shows the first 200 characters
	require.Contains(t, html, strings.Repeat("A", 200)+"...")

	// canonical URL and redirect
	require.Contains(t, html, `content="https://westernsydney.jobs/jobs/registered-nurse"`)
	require.Contains(t, html, "window.location.href")

	// image dimensions for unfurlers
	require.Contains(t, html, `<meta property="og:image:width" content="1200" />`)
	require.Contains(t, html, `<meta property="og:image:height" content="630" />`)

	// JSON-LD block
	require.Contains(t, html, `"@type": "JobPosting"`)
	require.Contains(t, html, `"datePosted"`)
}

func TestRenderJobLogoFallback(t *testing.T) {
	renderer := testRenderer(t)

	job := jobs.Job{
		Title:       "Forklift Driver",
		Company:     "Wetherill Park Logistics",
		Location:    "Wetherill Park",
		Description: "Move pallets.",
		Slug:        "forklift-driver",
	}

	html, err := renderer.RenderJob(job, "westernsydney.jobs")
	require.NoError(t, err)
	require.Contains(t, html, `<meta property="og:image" content="https://example.com/preview.jpeg" />`)
}

func TestRenderFallback(t *testing.T) {
	renderer := testRenderer(t)

	html := renderer.RenderFallback()
	require.Contains(t, html, "<title>Western Sydney Jobs - Find Your Dream Job</title>")
	require.Contains(t, html, `<meta property="og:image" content="https://example.com/preview.jpeg" />`)

	// the fallback never redirects
	require.NotContains(t, html, "window.location.href")
}

func TestBuildKeywords(t *testing.T) {
	job := jobs.Job{
		Title:    "Registered Nurse",
		Company:  "Blacktown Hospital",
		Location: "Blacktown",
	}

	require.Equal(t,
		"Registered Nurse, Blacktown Hospital, Blacktown, jobs, western sydney, Healthcare & Medical, Education & Training",
		buildKeywords(job, []string{"Healthcare & Medical", "Education & Training"}))

	// a job without categories keeps the trailing separator
	require.Equal(t,
		"Registered Nurse, Blacktown Hospital, Blacktown, jobs, western sydney, ",
		buildKeywords(job, nil))
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "abc...", Truncate("abc", 150))
	require.Equal(t, strings.Repeat("x", 150)+"...", Truncate(strings.Repeat("x", 400), 150))
	require.Equal(t, "...", Truncate("", 150))
}
