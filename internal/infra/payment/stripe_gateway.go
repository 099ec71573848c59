package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"nexgen-pricing/internal/domain/model"
	"nexgen-pricing/internal/domain/ports/adapter"
)

var _ adapter.PaymentGateway = (*StripeGateway)(nil)

// StripeGateway wraps Stripe hosted Checkout Sessions. The pricing core
// hands the visitor off to /payment/stripe with a whole-unit amount; this
// gateway turns that amount into a hosted payment page.
type StripeGateway struct {
	origin  string
	sandbox bool
}

// NewStripeGateway validates that the API key prefix matches the environment
// before installing it.
func NewStripeGateway(apiKey, origin string, sandbox bool) (*StripeGateway, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("stripe API key is empty")
	}
	if sandbox && !strings.HasPrefix(apiKey, "sk_test_") {
		return nil, fmt.Errorf("sandbox mode requires a test key (sk_test_...), got key with prefix %q", keyPrefix(apiKey))
	}
	if !sandbox && !strings.HasPrefix(apiKey, "sk_live_") {
		return nil, fmt.Errorf("production mode requires a live key (sk_live_...), got key with prefix %q", keyPrefix(apiKey))
	}

	stripe.Key = apiKey
	return &StripeGateway{origin: strings.TrimSuffix(origin, "/"), sandbox: sandbox}, nil
}

func keyPrefix(key string) string {
	if len(key) > 8 {
		return key[:8] + "..."
	}
	return key
}

func (g *StripeGateway) Name() string { return ProviderStripe }

func (g *StripeGateway) Request(ctx context.Context, amount int64, currency model.CurrencyCode, description string, meta map[string]string) (string, string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(strings.ToLower(string(currency))),
				// Stripe wants minor units; catalog prices are whole units.
				UnitAmount: stripe.Int64(amount * 100),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(description),
				},
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL: stripe.String(g.origin + "/payment/success"),
		CancelURL:  stripe.String(g.origin + "/payment/failed"),
	}
	params.Context = ctx
	for k, v := range meta {
		params.AddMetadata(k, v)
	}

	s, err := session.New(params)
	if err != nil {
		return "", "", fmt.Errorf("create checkout session: %w", err)
	}
	return s.ID, s.URL, nil
}

func (g *StripeGateway) Verify(ctx context.Context, ref string, amount int64) (bool, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	s, err := session.Get(ref, params)
	if err != nil {
		return false, fmt.Errorf("retrieve checkout session: %w", err)
	}
	return s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid && s.AmountTotal == amount*100, nil
}
