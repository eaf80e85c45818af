package preview

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/wsjobs/go-job-board/internal/jobs"
)

// Config carries the site identity the renderer stamps into every
// document. All fields are read-only once the renderer is built.
type Config struct {
	// SiteName appears in titles, og:site_name and the loading shell.
	SiteName string
	// PreviewImage is the 1200x630 og:image for the fallback document
	// and for jobs without a logo.
	PreviewImage string
}

// Renderer produces the crawler-facing HTML for a single job, or a
// generic fallback document when no job could be resolved. Its output
// is always a complete, valid HTML document.
type Renderer struct {
	cfg      Config
	jobTmpl  *template.Template
	fallback string
}

// NewRenderer builds a Renderer from the given site config.
func NewRenderer(cfg Config) (*Renderer, error) {
	jobTmpl, err := template.New("job").Parse(jobDocument)
	if err != nil {
		return nil, fmt.Errorf("cannot parse job preview template: %w", err)
	}

	var sb strings.Builder
	fallbackTmpl, err := template.New("fallback").Parse(fallbackDocument)
	if err != nil {
		return nil, fmt.Errorf("cannot parse fallback template: %w", err)
	}
	if err = fallbackTmpl.Execute(&sb, cfg); err != nil {
		return nil, fmt.Errorf("cannot render fallback document: %w", err)
	}

	return &Renderer{
		cfg:      cfg,
		jobTmpl:  jobTmpl,
		fallback: sb.String(),
	}, nil
}

type jobDocumentData struct {
	SiteName        string
	JobURL          string
	JobTitle        string
	JobDescription  string
	JobImage        string
	Keywords        string
	Title           string
	Company         string
	Location        string
	CardDescription string
	JSONLD          template.JS
}

// RenderJob produces the preview document for one job. The canonical
// job URL is built from the request host.
func (r *Renderer) RenderJob(job jobs.Job, host string) (string, error) {
	jobURL := fmt.Sprintf("https://%s/jobs/%s", host, job.Slug)

	image := job.CompanyLogo
	if image == "" {
		image = r.cfg.PreviewImage
	}

	categories := make([]string, 0, len(job.Categories))
	for _, c := range job.Categories {
		categories = append(categories, string(c))
	}

	jsonLD, err := marshalJobPosting(job, jobURL, categories)
	if err != nil {
		return "", fmt.Errorf("cannot build JSON-LD block: %w", err)
	}

	data := jobDocumentData{
		SiteName: r.cfg.SiteName,
		JobURL:   jobURL,
		JobTitle: fmt.Sprintf("%s at %s - %s", job.Title, job.Company, r.cfg.SiteName),
		JobDescription: fmt.Sprintf("%s position at %s in %s. %s",
			job.Title, job.Company, job.Location, Truncate(job.Description, 150)),
		JobImage:        image,
		Keywords:        buildKeywords(job, categories),
		Title:           job.Title,
		Company:         job.Company,
		Location:        job.Location,
		CardDescription: Truncate(job.Description, 200),
		JSONLD:          template.JS(jsonLD),
	}

	var sb strings.Builder
	if err := r.jobTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("cannot render job preview: %w", err)
	}
	return sb.String(), nil
}

// RenderFallback returns the generic site-wide document used when no
// job was resolved. It carries static copy and no redirect.
func (r *Renderer) RenderFallback() string {
	return r.fallback
}

// Truncate returns the first n runes of s followed by an ellipsis.
// The ellipsis is always appended, matching the upstream behavior of
// the document this renderer reproduces.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + "..."
}

// buildKeywords always appends the category segment, so a job with no
// categories ends with a trailing separator. That matches the page
// being reproduced.
func buildKeywords(job jobs.Job, categories []string) string {
	base := []string{job.Title, job.Company, job.Location, "jobs", "western sydney"}
	return strings.Join(base, ", ") + ", " + strings.Join(categories, ", ")
}

// marshalJobPosting builds the schema.org JobPosting block.
// datePosted is the render time, not the job's posted date; that is
// the behavior of the document being reproduced.
func marshalJobPosting(job jobs.Job, jobURL string, categories []string) (string, error) {
	posting := map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "JobPosting",
		"title":       job.Title,
		"description": job.Description,
		"hiringOrganization": map[string]interface{}{
			"@type": "Organization",
			"name":  job.Company,
			"logo":  job.CompanyLogo,
		},
		"jobLocation": map[string]interface{}{
			"@type": "Place",
			"address": map[string]interface{}{
				"@type":           "PostalAddress",
				"addressLocality": job.Location,
				"addressRegion":   "NSW",
				"addressCountry":  "AU",
			},
		},
		"datePosted":     time.Now().UTC().Format(time.RFC3339),
		"employmentType": "FULL_TIME",
		"workHours":      "Full-time",
		"url":            jobURL,
		"jobBenefits":    strings.Join(categories, ", "),
	}

	encoded, err := json.MarshalIndent(posting, "  ", "  ")
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}
