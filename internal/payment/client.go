package payment

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

// SessionParams carry everything needed to open a checkout session
// for a featured job listing upgrade.
type SessionParams struct {
	PriceID           string
	Quantity          int64
	SuccessURL        string
	CancelURL         string
	CustomerEmail     string
	ClientReferenceID string
}

// Session is the subset of the provider's checkout session the API exposes.
type Session struct {
	ID  string
	URL string
}

type CheckoutClient interface {
	CreateCheckoutSession(params SessionParams) (Session, error)
	ConstructWebhookEvent(payload []byte, signatureHeader string) (stripe.Event, error)
}

type StripeClient struct {
	webhookSecret string
}

func NewStripeClient(secretKey, webhookSecret string) CheckoutClient {
	stripe.Key = secretKey
	return &StripeClient{
		webhookSecret: webhookSecret,
	}
}

// CreateCheckoutSession opens a one-off payment session for the given price.
func (client *StripeClient) CreateCheckoutSession(params SessionParams) (Session, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(params.PriceID),
				Quantity: stripe.Int64(params.Quantity),
			},
		},
		SuccessURL:        stripe.String(params.SuccessURL),
		CancelURL:         stripe.String(params.CancelURL),
		CustomerEmail:     stripe.String(params.CustomerEmail),
		ClientReferenceID: stripe.String(params.ClientReferenceID),
	}

	s, err := session.New(sessionParams)
	if err != nil {
		return Session{}, err
	}

	return Session{
		ID:  s.ID,
		URL: s.URL,
	}, nil
}

// ConstructWebhookEvent verifies the webhook signature and parses the event.
func (client *StripeClient) ConstructWebhookEvent(payload []byte, signatureHeader string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signatureHeader, client.webhookSecret)
}
