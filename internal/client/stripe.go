package client

import (
	"fmt"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/webhook"

	"storefront-backend/internal/config"
)

// StripeVerifier authenticates inbound webhook payloads. Verification runs
// over the raw body bytes; re-serializing a parsed body would break the
// signature.
type StripeVerifier interface {
	VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error)
}

type stripeClient struct {
	webhookSecret string
}

func NewStripeClient(cfg *config.Stripe) StripeVerifier {
	stripe.Key = cfg.SecretKey
	return &stripeClient{webhookSecret: cfg.WebhookSecret}
}

func (c *stripeClient) VerifyEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	if c.webhookSecret == "" {
		return stripe.Event{}, fmt.Errorf("stripe webhook secret is not configured")
	}
	return webhook.ConstructEvent(payload, sigHeader, c.webhookSecret)
}
