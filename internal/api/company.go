package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wsjobs/go-job-board/internal/jobs"
)

// listCompanies handles listing the companies derived from job listings.
// Grouping runs over all listings so an employer whose every job is
// filled still appears, with zero open positions.
func (server *Server) listCompanies(ctx *gin.Context) {
	rows, err := server.store.ListAllJobs(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	all := jobs.NormalizeAll(rows, server.jobDefaults())
	ctx.JSON(http.StatusOK, jobs.Companies(all, server.config.PlaceholderLogoURL))
}

// listCategories handles listing the known job categories
func (server *Server) listCategories(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, jobs.Categories)
}

// listLocations handles listing the known Western Sydney locations
func (server *Server) listLocations(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, jobs.WesternSydneyLocations)
}
