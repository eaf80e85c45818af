package api

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	db "github.com/wsjobs/go-job-board/internal/db/sqlc"
	"github.com/wsjobs/go-job-board/internal/jobs"
)

// adminListJobs handles listing every job for a moderator, including
// filled and expired ones.
func (server *Server) adminListJobs(ctx *gin.Context) {
	rows, err := server.store.ListAllJobs(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, jobs.NormalizeAll(rows, server.jobDefaults()))
}

type setJobFeaturedRequest struct {
	IsFeatured *bool `json:"is_featured" binding:"required"`
}

// setJobFeatured handles promoting a job listing to featured or demoting it
func (server *Server) setJobFeatured(ctx *gin.Context) {
	var request setJobFeaturedRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	row, ok := server.jobByIDParam(ctx)
	if !ok {
		return
	}

	err := server.store.SetJobFeatured(ctx, db.SetJobFeaturedParams{
		ID:         row.ID,
		IsFeatured: *request.IsFeatured,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"is_featured": *request.IsFeatured})
}

// adminSetJobFilled handles marking any job listing as filled or reopening it
func (server *Server) adminSetJobFilled(ctx *gin.Context) {
	var request setJobFilledRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	row, ok := server.jobByIDParam(ctx)
	if !ok {
		return
	}

	err := server.store.SetJobFilled(ctx, db.SetJobFilledParams{
		ID:       row.ID,
		IsFilled: *request.IsFilled,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"is_filled": *request.IsFilled})
}

// adminUpdateJob handles editing any job listing as a moderator. The
// company fields stay as the listing already has them.
func (server *Server) adminUpdateJob(ctx *gin.Context) {
	var request jobDetailsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := request.validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	row, ok := server.jobByIDParam(ctx)
	if !ok {
		return
	}

	params := db.UpdateJobParams{
		ID:             row.ID,
		Title:          request.Title,
		Description:    request.Description,
		CompanyName:    row.CompanyName,
		CompanyLogo:    row.CompanyLogo,
		CompanyWebsite: row.CompanyWebsite,
		Location:       request.Location,
		SalaryMin:      nullInt32(request.SalaryMin),
		SalaryMax:      nullInt32(request.SalaryMax),
		SalaryCurrency: nullString(request.SalaryCurrency),
		JobType:        jobs.StoredJobType(request.Type),
		IsRemote:       request.Remote,
		ContactEmail:   nullString(request.ContactEmail),
		ContactPhone:   nullString(request.ContactPhone),
		ApplyUrl:       nullString(request.ApplyURL),
		Requirements:   emptyIfNil(request.Requirements),
		Benefits:       emptyIfNil(request.Benefits),
		Tags:           emptyIfNil(request.Tags),
		Categories:     emptyIfNil(request.Categories),
	}

	updated, err := server.store.UpdateJob(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	job, err := jobs.Normalize(updated, server.jobDefaults())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, job)
}

// adminDeleteJob handles removing any job listing as a moderator
func (server *Server) adminDeleteJob(ctx *gin.Context) {
	row, ok := server.jobByIDParam(ctx)
	if !ok {
		return
	}

	err := server.store.DeleteJob(ctx, row.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusNoContent, nil)
}

// jobByIDParam loads the job behind the :id route param. On failure it
// writes the error response and returns false.
func (server *Server) jobByIDParam(ctx *gin.Context) (db.Job, bool) {
	jobID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid job id")))
		return db.Job{}, false
	}

	row, err := server.store.GetJob(ctx, jobID)
	if err != nil {
		if err == sql.ErrNoRows {
			err = fmt.Errorf("job with this id does not exist")
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return db.Job{}, false
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return db.Job{}, false
	}

	return row, true
}
