// Package payments wraps the Stripe payment-intent API behind a small
// interface so handlers can be tested without network access.
//
// The service never persists intents and never links them to orders: the
// frontend charges first and records the order in a separate call, with no
// server-side atomicity between the two.
package payments

import (
	"context"
	"math"

	"github.com/google/uuid"
	stripe "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"go.uber.org/zap"
)

// Currency is the only currency the service charges in.
const Currency = "usd"

// IntentCreator creates a card-payable payment intent for an amount in
// minor units and returns the intent's client secret.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}

// MinorUnits converts a decimal currency amount to integer minor units
// (cents), rounding to the nearest cent. Stripe's amount contract is an
// integer; 10.00 becomes 1000.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// StripeClient is the production IntentCreator backed by the Stripe API.
type StripeClient struct {
	api *client.API
	log *zap.Logger
}

// NewStripeClient builds a client from the account's secret key.
func NewStripeClient(secretKey string, logger *zap.Logger) *StripeClient {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeClient{api: api, log: logger}
}

// CreateIntent requests a card-payable intent from Stripe. Amount
// validation is Stripe's: a non-positive amount comes back as a processor
// error, not a local one. Each request carries a fresh idempotency key so
// a network-level retry by the transport cannot double-create.
func (c *StripeClient) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		c.log.Error("stripe payment intent creation failed",
			zap.Int64("amount", amount),
			zap.String("currency", currency),
			zap.Error(err))
		return "", err
	}
	return pi.ClientSecret, nil
}
