package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/wsjobs/go-job-board/internal/jobs"
)

const previewContentType = "text/html; charset=utf-8"

// jobPreview serves the crawler-facing HTML document for a single job.
// The document carries the social meta tags and redirects browsers to
// the canonical job page. It always responds with 200: when the slug
// cannot be resolved the generic site document is served instead.
func (server *Server) jobPreview(ctx *gin.Context) {
	slug := strings.TrimPrefix(ctx.Param("slug"), "/")
	if slug == "" {
		server.fallbackPreview(ctx)
		return
	}

	candidates := server.previewCandidates(ctx)
	job, ok := jobs.Resolve(slug, candidates)
	if !ok {
		server.fallbackPreview(ctx)
		return
	}

	html, err := server.renderer.RenderJob(job, ctx.Request.Host)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("failed to render job preview")
		server.fallbackPreview(ctx)
		return
	}

	maxAge := fmt.Sprintf("public, max-age=%d, must-revalidate", server.config.JobPreviewMaxAge)
	ctx.Header("Cache-Control", maxAge)
	ctx.Data(http.StatusOK, previewContentType, []byte(html))
}

// fallbackPreview serves the generic site document. It doubles as the
// catch-all for unmatched routes so shared links never break.
func (server *Server) fallbackPreview(ctx *gin.Context) {
	ctx.Header("Cache-Control", "public, max-age=0, must-revalidate")
	ctx.Data(http.StatusOK, previewContentType, []byte(server.renderer.RenderFallback()))
}

// previewCandidates returns the open jobs to resolve preview slugs
// against. When the store is unavailable or empty, the built-in sample
// listings keep previews rendering.
func (server *Server) previewCandidates(ctx *gin.Context) []jobs.Job {
	rows, err := server.store.ListOpenJobs(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to sample jobs for preview")
		return jobs.SampleJobs()
	}

	all := jobs.NormalizeAll(rows, server.jobDefaults())
	if len(all) == 0 {
		return jobs.SampleJobs()
	}

	return all
}
