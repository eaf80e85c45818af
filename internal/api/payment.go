package api

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/stripe/stripe-go/v76"
	db "github.com/wsjobs/go-job-board/internal/db/sqlc"
	"github.com/wsjobs/go-job-board/internal/payment"
)

const stripeSignatureHeader = "Stripe-Signature"

type createFeaturedCheckoutRequest struct {
	JobID string `json:"job_id" binding:"required"`
}

type createFeaturedCheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// createFeaturedCheckout handles opening a checkout session that upgrades
// one of the authenticated employer's job listings to featured.
func (server *Server) createFeaturedCheckout(ctx *gin.Context) {
	var request createFeaturedCheckoutRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	jobID, err := uuid.Parse(request.JobID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid job id")))
		return
	}

	employer, ok := server.authenticatedEmployer(ctx)
	if !ok {
		return
	}

	row, err := server.store.GetJob(ctx, jobID)
	if err != nil {
		if err == sql.ErrNoRows {
			err = fmt.Errorf("job with this id does not exist")
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}
	if row.EmployerID != employer.ID {
		err = fmt.Errorf("job does not belong to this employer")
		ctx.JSON(http.StatusForbidden, errorResponse(err))
		return
	}

	session, err := server.checkout.CreateCheckoutSession(payment.SessionParams{
		PriceID:           server.config.FeaturedPostPriceID,
		Quantity:          1,
		SuccessURL:        server.config.BaseURL + "/post-job?payment=success",
		CancelURL:         server.config.BaseURL + "/post-job?payment=cancelled",
		CustomerEmail:     employer.Email,
		ClientReferenceID: jobID.String(),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusCreated, createFeaturedCheckoutResponse{
		SessionID:   session.ID,
		CheckoutURL: session.URL,
	})
}

type orderResponse struct {
	ID                int64  `json:"id"`
	CheckoutSessionID string `json:"checkout_session_id"`
	PriceID           string `json:"price_id"`
	AmountTotal       int64  `json:"amount_total"`
	Currency          string `json:"currency"`
	PaymentStatus     string `json:"payment_status"`
	OrderStatus       string `json:"order_status"`
}

// getLatestOrder handles getting the authenticated employer's most recent order
func (server *Server) getLatestOrder(ctx *gin.Context) {
	employer, ok := server.authenticatedEmployer(ctx)
	if !ok {
		return
	}

	order, err := server.store.GetLatestOrderByEmployer(ctx, employer.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			err = fmt.Errorf("employer has no orders")
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, orderResponse{
		ID:                order.ID,
		CheckoutSessionID: order.CheckoutSessionID,
		PriceID:           order.PriceID,
		AmountTotal:       order.AmountTotal,
		Currency:          order.Currency,
		PaymentStatus:     order.PaymentStatus,
		OrderStatus:       order.OrderStatus,
	})
}

// paymentWebhook handles checkout events sent by the payment provider.
// A completed checkout session records the order and promotes the paid
// job listing to featured.
func (server *Server) paymentWebhook(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	event, err := server.checkout.ConstructWebhookEvent(body, ctx.GetHeader(stripeSignatureHeader))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid webhook signature")))
		return
	}

	if event.Type != "checkout.session.completed" {
		// other event types are acknowledged and ignored
		ctx.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	jobID, err := uuid.Parse(session.ClientReferenceID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Errorf("invalid client reference id")))
		return
	}

	row, err := server.store.GetJob(ctx, jobID)
	if err != nil {
		if err == sql.ErrNoRows {
			err = fmt.Errorf("job with this id does not exist")
			ctx.JSON(http.StatusNotFound, errorResponse(err))
			return
		}
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	err = server.store.SetJobFeatured(ctx, db.SetJobFeaturedParams{
		ID:         jobID,
		IsFeatured: true,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	_, err = server.store.CreateOrder(ctx, db.CreateOrderParams{
		CheckoutSessionID: session.ID,
		EmployerID:        row.EmployerID,
		PriceID:           server.config.FeaturedPostPriceID,
		AmountTotal:       session.AmountTotal,
		Currency:          string(session.Currency),
		PaymentStatus:     string(session.PaymentStatus),
		OrderStatus:       "completed",
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	log.Info().Str("session_id", session.ID).Str("job_id", jobID.String()).
		Msg("checkout completed, job promoted to featured")

	ctx.JSON(http.StatusOK, gin.H{"received": true})
}
