package adapter

import (
	"context"

	"nexgen-pricing/internal/domain/model"
)

// CheckoutRouter maps a confirmed total to the currency-appropriate payment
// page URL. Producing that URL is the boundary of the pricing core's
// responsibility; everything past it belongs to the payment page.
type CheckoutRouter interface {
	CheckoutURL(currency model.CurrencyCode, amount int64) string
}

// PaymentGateway is the provider-side hosted payment port.
type PaymentGateway interface {
	Name() string
	// Request creates a hosted payment for a whole-unit amount and returns
	// the provider reference and the URL to send the customer to.
	Request(ctx context.Context, amount int64, currency model.CurrencyCode, description string, meta map[string]string) (ref string, payURL string, err error)
	// Verify checks that the referenced payment completed for the expected
	// whole-unit amount.
	Verify(ctx context.Context, ref string, amount int64) (bool, error)
}
