package payment

import (
	"fmt"
	"strings"

	"nexgen-pricing/internal/domain/model"
	"nexgen-pricing/internal/domain/ports/adapter"
)

const (
	ProviderStripe   = "stripe"
	ProviderRazorpay = "razorpay"
)

var _ adapter.CheckoutRouter = (*Router)(nil)

// Router picks the payment page for a confirmed total: Razorpay for INR,
// Stripe for everything else. The produced URL is the whole of the pricing
// core's output contract.
type Router struct {
	origin string
}

func NewRouter(origin string) *Router {
	return &Router{origin: strings.TrimSuffix(origin, "/")}
}

// ProviderFor maps a currency to its payment provider.
func ProviderFor(currency model.CurrencyCode) string {
	if currency == model.CurrencyINR {
		return ProviderRazorpay
	}
	return ProviderStripe
}

func (r *Router) CheckoutURL(currency model.CurrencyCode, amount int64) string {
	return fmt.Sprintf("%s/payment/%s?amount=%d", r.origin, ProviderFor(currency), amount)
}
