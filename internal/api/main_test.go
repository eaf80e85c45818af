package api

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/wsjobs/go-job-board/internal/config"
	db "github.com/wsjobs/go-job-board/internal/db/sqlc"
	"github.com/wsjobs/go-job-board/internal/payment"
	"github.com/wsjobs/go-job-board/internal/worker"
	"github.com/wsjobs/go-job-board/pkg/token"
	"github.com/wsjobs/go-job-board/pkg/utils"
)

func newTestServer(t *testing.T, store db.Store, taskDistributor worker.TaskDistributor, checkout payment.CheckoutClient) *Server {
	cfg := config.Config{
		TokenSymmetricKey:   utils.RandomString(32),
		AccessTokenDuration: time.Minute,
		SiteName:            "Western Sydney Jobs",
		BaseURL:             "https://westernsydney.jobs",
		PreviewImageURL:     "https://westernsydney.jobs/preview.png",
		PlaceholderLogoURL:  "https://example.com/placeholder.png",
		DefaultCurrency:     "AUD",
		JobPreviewMaxAge:    300,
		FeaturedPostPriceID: "price_test_featured",
	}

	server, err := NewServer(cfg, store, taskDistributor, checkout)
	require.NoError(t, err)

	return server
}

func addAuthorization(
	t *testing.T,
	request *http.Request,
	tokenMaker token.Maker,
	authorizationType string,
	email string,
	duration time.Duration,
) {
	accessToken, err := tokenMaker.CreateToken(email, duration)
	require.NoError(t, err)

	authorizationHeader := fmt.Sprintf("%s %s", authorizationType, accessToken)
	request.Header.Set(authorizationHeaderKey, authorizationHeader)
}

// generateRandomEmployer generates a random employer row together with
// the plaintext password behind its hash
func generateRandomEmployer(t *testing.T) (db.Employer, string) {
	password := utils.RandomString(8)
	hashedPassword, err := utils.HashPassword(password)
	require.NoError(t, err)

	employer := db.Employer{
		ID:             uuid.New(),
		Email:          utils.RandomEmail(),
		HashedPassword: hashedPassword,
		FullName:       utils.RandomString(10),
		CompanyName:    utils.RandomString(12),
		CompanyLogo: sql.NullString{
			String: "https://example.com/logo.png",
			Valid:  true,
		},
		CreatedAt: time.Now(),
	}

	return employer, password
}

// generateRandomJobRow generates a random open job row owned by the employer
func generateRandomJobRow(employer db.Employer) db.Job {
	return db.Job{
		ID:             uuid.New(),
		EmployerID:     employer.ID,
		Title:          utils.RandomString(10),
		Description:    utils.RandomString(50),
		CompanyName:    employer.CompanyName,
		CompanyLogo:    employer.CompanyLogo,
		Location:       "Parramatta",
		SalaryMin:      sql.NullInt32{Int32: 60000, Valid: true},
		SalaryMax:      sql.NullInt32{Int32: 80000, Valid: true},
		SalaryCurrency: sql.NullString{String: "AUD", Valid: true},
		JobType:        "full_time",
		Requirements:   []string{},
		Benefits:       []string{},
		Tags:           []string{},
		Categories:     []string{"Healthcare & Medical"},
		CreatedAt:      time.Now(),
		ExpiresAt:      time.Now().Add(30 * 24 * time.Hour),
	}
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}
