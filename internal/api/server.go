package api

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/wsjobs/go-job-board/internal/config"
	db "github.com/wsjobs/go-job-board/internal/db/sqlc"
	"github.com/wsjobs/go-job-board/internal/payment"
	"github.com/wsjobs/go-job-board/internal/preview"
	"github.com/wsjobs/go-job-board/internal/worker"
	"github.com/wsjobs/go-job-board/pkg/token"
)

const baseUrl = "/api/v1"

// Server serves HTTP requests for the job board
type Server struct {
	config          config.Config
	store           db.Store
	tokenMaker      token.Maker
	taskDistributor worker.TaskDistributor
	checkout        payment.CheckoutClient
	renderer        *preview.Renderer
	router          *gin.Engine
}

// NewServer creates a new HTTP server and setups routing
func NewServer(
	config config.Config,
	store db.Store,
	taskDistributor worker.TaskDistributor,
	checkout payment.CheckoutClient,
) (*Server, error) {
	tokenMaker, err := token.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	renderer, err := preview.NewRenderer(preview.Config{
		SiteName:     config.SiteName,
		PreviewImage: config.PreviewImageURL,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create preview renderer: %w", err)
	}

	server := &Server{
		config:          config,
		store:           store,
		tokenMaker:      tokenMaker,
		taskDistributor: taskDistributor,
		checkout:        checkout,
		renderer:        renderer,
	}

	server.setupRouter()

	return server, nil
}

// setupRouter sets up the HTTP routing
func (server *Server) setupRouter() {
	router := gin.Default()

	routerV1 := router.Group(baseUrl)

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "Stripe-Signature")
	router.Use(cors.New(corsConfig))

	// === employers ===
	routerV1.POST("/employers", server.createEmployer)
	routerV1.POST("/employers/login", server.loginEmployer)

	// === jobs ===
	routerV1.GET("/jobs", server.listJobs)
	routerV1.GET("/jobs/:slug", server.getJobBySlug)

	// === companies and reference data ===
	routerV1.GET("/companies", server.listCompanies)
	routerV1.GET("/categories", server.listCategories)
	routerV1.GET("/locations", server.listLocations)

	// === payments ===
	routerV1.POST("/webhooks/stripe", server.paymentWebhook)

	// ===== routes that require authentication =====
	authRoutesV1 := routerV1.Group("/").Use(authMiddleware(server.tokenMaker))

	// === employers ===
	authRoutesV1.GET("/employers", server.getEmployer)
	authRoutesV1.DELETE("/employers", server.deleteEmployer)
	authRoutesV1.GET("/employers/jobs", server.listEmployerJobs)

	// === jobs ===
	authRoutesV1.POST("/jobs", server.createJob)
	authRoutesV1.PATCH("/jobs/:id", server.updateJob)
	authRoutesV1.DELETE("/jobs/:id", server.deleteJob)
	authRoutesV1.PATCH("/jobs/:id/filled", server.setJobFilled)

	// === payments ===
	authRoutesV1.POST("/checkout", server.createFeaturedCheckout)
	authRoutesV1.GET("/orders/latest", server.getLatestOrder)

	// ===== admin routes =====
	adminRoutesV1 := routerV1.Group("/admin").
		Use(authMiddleware(server.tokenMaker)).
		Use(server.adminMiddleware())

	adminRoutesV1.GET("/jobs", server.adminListJobs)
	adminRoutesV1.PATCH("/jobs/:id", server.adminUpdateJob)
	adminRoutesV1.PATCH("/jobs/:id/featured", server.setJobFeatured)
	adminRoutesV1.PATCH("/jobs/:id/filled", server.adminSetJobFilled)
	adminRoutesV1.DELETE("/jobs/:id", server.adminDeleteJob)

	// ===== social preview documents =====
	router.GET("/share/jobs/*slug", server.jobPreview)
	router.NoRoute(server.fallbackPreview)

	server.router = router
}

// Start runs the HTTP server on a given address
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func errorResponse(err error) ErrorResponse {
	return ErrorResponse{Error: err.Error()}
}
