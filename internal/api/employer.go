package api

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	db "github.com/wsjobs/go-job-board/internal/db/sqlc"
	"github.com/wsjobs/go-job-board/internal/jobs"
	"github.com/wsjobs/go-job-board/pkg/token"
	"github.com/wsjobs/go-job-board/pkg/utils"
)

type createEmployerRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	CompanyName    string `json:"company_name" binding:"required"`
	CompanyLogo    string `json:"company_logo"`
	CompanyWebsite string `json:"company_website"`
}

type employerResponse struct {
	ID             string    `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	CompanyName    string    `json:"company_name"`
	CompanyLogo    string    `json:"company_logo,omitempty"`
	CompanyWebsite string    `json:"company_website,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// newEmployerResponse creates a new employer response from a db.Employer
func newEmployerResponse(employer db.Employer) employerResponse {
	return employerResponse{
		ID:             employer.ID.String(),
		FullName:       employer.FullName,
		Email:          employer.Email,
		CompanyName:    employer.CompanyName,
		CompanyLogo:    employer.CompanyLogo.String,
		CompanyWebsite: employer.CompanyWebsite.String,
		CreatedAt:      employer.CreatedAt,
	}
}

// createEmployer handles creating a new employer account
func (server *Server) createEmployer(ctx *gin.Context) {
	var request createEmployerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	params := db.CreateEmployerParams{
		Email:          request.Email,
		HashedPassword: hashedPassword,
		FullName:       request.FullName,
		CompanyName:    request.CompanyName,
		CompanyLogo:    nullString(request.CompanyLogo),
		CompanyWebsite: nullString(request.CompanyWebsite),
	}

	employer, err := server.store.CreateEmployer(ctx, params)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code.Name() {
			case "unique_violation":
				err := fmt.Errorf("employer with this email already exists")
				ctx.JSON(http.StatusForbidden, errorResponse(err))
				return
			}
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, newEmployerResponse(employer))
}

type loginEmployerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginEmployerResponse struct {
	AccessToken string           `json:"access_token"`
	Employer    employerResponse `json:"employer"`
}

// loginEmployer handles login of an employer
func (server *Server) loginEmployer(ctx *gin.Context) {
	var request loginEmployerRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	employer, err := server.store.GetEmployerByEmail(ctx, request.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			err = fmt.Errorf("employer with this email does not exist")
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	err = utils.CheckPassword(request.Password, employer.HashedPassword)
	if err != nil {
		err = fmt.Errorf("incorrect password")
		ctx.JSON(http.StatusUnauthorized, errorResponse(err))
		return
	}

	accessToken, err := server.tokenMaker.CreateToken(employer.Email, server.config.AccessTokenDuration)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	res := loginEmployerResponse{
		AccessToken: accessToken,
		Employer:    newEmployerResponse(employer),
	}

	ctx.JSON(http.StatusOK, res)
}

// getEmployer handles getting the details of the authenticated employer
func (server *Server) getEmployer(ctx *gin.Context) {
	employer, ok := server.authenticatedEmployer(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, newEmployerResponse(employer))
}

// deleteEmployer handles deleting the authenticated employer account
func (server *Server) deleteEmployer(ctx *gin.Context) {
	employer, ok := server.authenticatedEmployer(ctx)
	if !ok {
		return
	}

	err := server.store.DeleteEmployer(ctx, employer.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusNoContent, nil)
}

// listEmployerJobs handles listing all jobs of the authenticated employer,
// including filled and expired ones.
func (server *Server) listEmployerJobs(ctx *gin.Context) {
	employer, ok := server.authenticatedEmployer(ctx)
	if !ok {
		return
	}

	rows, err := server.store.ListJobsByEmployer(ctx, employer.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, jobs.NormalizeAll(rows, server.jobDefaults()))
}

// authenticatedEmployer loads the employer behind the verified token payload.
// On failure it writes the error response and returns false.
func (server *Server) authenticatedEmployer(ctx *gin.Context) (db.Employer, bool) {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)

	employer, err := server.store.GetEmployerByEmail(ctx, authPayload.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			err = fmt.Errorf("account does not exist")
			ctx.JSON(http.StatusUnauthorized, errorResponse(err))
			return db.Employer{}, false
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return db.Employer{}, false
	}

	return employer, true
}

func nullString(value string) sql.NullString {
	return sql.NullString{
		String: value,
		Valid:  value != "",
	}
}
