package api

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	db "github.com/wsjobs/go-job-board/internal/db/sqlc"
	"github.com/wsjobs/go-job-board/internal/jobs"
	"github.com/wsjobs/go-job-board/internal/worker"
	"github.com/wsjobs/go-job-board/pkg/validation"
)

func (server *Server) jobDefaults() jobs.Defaults {
	return jobs.Defaults{
		PlaceholderLogo: server.config.PlaceholderLogoURL,
		Currency:        server.config.DefaultCurrency,
	}
}

type listJobsRequest struct {
	Search    string `form:"search"`
	Location  string `form:"location"`
	Type      string `form:"type"`
	Remote    bool   `form:"remote"`
	CompanyID string `form:"company_id"`
	Category  string `form:"category"`
}

// listJobs handles listing open jobs, filtered by the query parameters.
// Featured jobs are always listed first.
func (server *Server) listJobs(ctx *gin.Context) {
	var request listJobsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	rows, err := server.store.ListOpenJobs(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	all := jobs.NormalizeAll(rows, server.jobDefaults())
	filtered := jobs.Filter(all, jobs.Criteria{
		Text:      request.Search,
		Location:  request.Location,
		Type:      request.Type,
		Remote:    request.Remote,
		CompanyID: request.CompanyID,
		Category:  jobs.Category(request.Category),
	})

	ctx.JSON(http.StatusOK, jobs.SortFeaturedFirst(filtered))
}

// getJobBySlug handles getting a single open job by its title slug.
// Slugs are derived from titles and are not unique: the first open job
// whose title produces the slug wins. Every resolved view bumps the
// applications counter, which has always been a view counter.
func (server *Server) getJobBySlug(ctx *gin.Context) {
	rows, err := server.store.ListOpenJobs(ctx)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	all := jobs.NormalizeAll(rows, server.jobDefaults())
	job, ok := jobs.Resolve(ctx.Param("slug"), all)
	if !ok {
		err := fmt.Errorf("job with this slug does not exist")
		ctx.JSON(http.StatusNotFound, errorResponse(err))
		return
	}

	if jobID, err := uuid.Parse(job.ID); err == nil {
		if err := server.store.IncrementApplicationsCount(ctx, jobID); err != nil {
			log.Warn().Err(err).Str("job_id", job.ID).Msg("failed to bump view counter")
		}
	}

	ctx.JSON(http.StatusOK, job)
}

type jobDetailsRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	Location       string   `json:"location" binding:"required"`
	Type           string   `json:"type" binding:"required"`
	Remote         bool     `json:"remote"`
	SalaryMin      int32    `json:"salary_min"`
	SalaryMax      int32    `json:"salary_max"`
	SalaryCurrency string   `json:"salary_currency"`
	ContactEmail   string   `json:"contact_email"`
	ContactPhone   string   `json:"contact_phone"`
	ApplyURL       string   `json:"apply_url"`
	Requirements   []string `json:"requirements"`
	Benefits       []string `json:"benefits"`
	Tags           []string `json:"tags"`
	Categories     []string `json:"categories"`
}

// validate checks the constraints gin binding tags cannot express.
func (request jobDetailsRequest) validate() error {
	if err := validation.ValidateStringLength(request.Title, 2, 100); err != nil {
		return fmt.Errorf("invalid title: %w", err)
	}
	if err := validation.ValidateStringLength(request.Description, 10, 10000); err != nil {
		return fmt.Errorf("invalid description: %w", err)
	}
	if request.ContactEmail != "" {
		if err := validation.ValidateEmail(request.ContactEmail); err != nil {
			return fmt.Errorf("invalid contact email: %w", err)
		}
	}

	validType := false
	for _, t := range jobs.JobTypes {
		if request.Type == t {
			validType = true
			break
		}
	}
	if !validType {
		return fmt.Errorf("invalid job type: must be one of %v", jobs.JobTypes)
	}

	if len(request.Categories) > jobs.MaxCategories {
		return fmt.Errorf("a job can carry at most %d categories", jobs.MaxCategories)
	}
	for _, c := range request.Categories {
		valid := false
		for _, known := range jobs.Categories {
			if jobs.Category(c) == known {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown category: %s", c)
		}
	}

	if request.SalaryMin < 0 || request.SalaryMax < 0 {
		return fmt.Errorf("salary bounds must not be negative")
	}
	if request.SalaryMin > 0 && request.SalaryMax > 0 && request.SalaryMin > request.SalaryMax {
		return fmt.Errorf("salary min must not exceed salary max")
	}

	return nil
}

// createJob handles creating a new job listing for the authenticated employer
func (server *Server) createJob(ctx *gin.Context) {
	var request jobDetailsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := request.validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	employer, ok := server.authenticatedEmployer(ctx)
	if !ok {
		return
	}

	params := db.CreateJobParams{
		EmployerID:     employer.ID,
		Title:          request.Title,
		Description:    request.Description,
		CompanyName:    employer.CompanyName,
		CompanyLogo:    employer.CompanyLogo,
		CompanyWebsite: employer.CompanyWebsite,
		Location:       request.Location,
		SalaryMin:      nullInt32(request.SalaryMin),
		SalaryMax:      nullInt32(request.SalaryMax),
		SalaryCurrency: nullString(request.SalaryCurrency),
		JobType:        jobs.StoredJobType(request.Type),
		IsRemote:       request.Remote,
		IsFeatured:     false,
		ContactEmail:   nullString(request.ContactEmail),
		ContactPhone:   nullString(request.ContactPhone),
		ApplyUrl:       nullString(request.ApplyURL),
		Requirements:   emptyIfNil(request.Requirements),
		Benefits:       emptyIfNil(request.Benefits),
		Tags:           emptyIfNil(request.Tags),
		Categories:     emptyIfNil(request.Categories),
	}

	row, err := server.store.CreateJob(ctx, params)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	taskPayload := &worker.PayloadSendJobPostedEmail{
		Email:       employer.Email,
		FullName:    employer.FullName,
		JobTitle:    row.Title,
		CompanyName: row.CompanyName,
	}
	opts := []asynq.Option{
		asynq.MaxRetry(10),
		asynq.Queue(worker.QueueDefault),
	}
	err = server.taskDistributor.DistributeTaskSendJobPostedEmail(ctx, taskPayload, opts...)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	job, err := jobs.Normalize(row, server.jobDefaults())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, job)
}

// updateJob handles updating a job listing owned by the authenticated employer
func (server *Server) updateJob(ctx *gin.Context) {
	var request jobDetailsRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}
	if err := request.validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	row, employer, ok := server.ownedJob(ctx)
	if !ok {
		return
	}

	params := db.UpdateJobParams{
		ID:             row.ID,
		Title:          request.Title,
		Description:    request.Description,
		CompanyName:    employer.CompanyName,
		CompanyLogo:    employer.CompanyLogo,
		CompanyWebsite: employer.CompanyWebsite,
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

// deleteJob handles deleting a job listing owned by the authenticated employer
func (server *Server) deleteJob(ctx *gin.Context) {
	row, _, ok := server.ownedJob(ctx)
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

type setJobFilledRequest struct {
	IsFilled *bool `json:"is_filled" binding:"required"`
}

// setJobFilled handles marking a job listing as filled or reopening it
func (server *Server) setJobFilled(ctx *gin.Context) {
	var request setJobFilledRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	row, _, ok := server.ownedJob(ctx)
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

// ownedJob loads the job from the :id param and verifies that the
// authenticated employer owns it. On failure it writes the error
// response and returns false.
func (server *Server) ownedJob(ctx *gin.Context) (db.Job, db.Employer, bool) {
	jobID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid job id")))
		return db.Job{}, db.Employer{}, false
	}

	employer, ok := server.authenticatedEmployer(ctx)
	if !ok {
		return db.Job{}, db.Employer{}, false
	}

	row, err := server.store.GetJob(ctx, jobID)
	if err != nil {
		if err == sql.ErrNoRows {
			err = fmt.Errorf("job with this id does not exist")
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return db.Job{}, db.Employer{}, false
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return db.Job{}, db.Employer{}, false
	}

	if row.EmployerID != employer.ID {
		err = fmt.Errorf("job does not belong to this employer")
		ctx.JSON(http.StatusForbidden, errorResponse(err))
		return db.Job{}, db.Employer{}, false
	}

	return row, employer, true
}

func nullInt32(value int32) sql.NullInt32 {
	return sql.NullInt32{
		Int32: value,
		Valid: value != 0,
	}
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
