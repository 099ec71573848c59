package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Count of checkout handoffs grouped by provider (stripe|razorpay).
	CheckoutHandoffs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_handoffs_total",
			Help: "Count of checkout URL handoffs by payment provider.",
		},
		[]string{"provider"},
	)

	// Count of webhook verifications grouped by provider and result (ok|fail).
	WebhookVerifyRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_verify_requests_total",
			Help: "Count of inbound payment webhook verifications by provider and result.",
		},
		[]string{"provider", "result"},
	)

	// Count of explicit region choices grouped by currency.
	RegionChoices = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "region_choices_total",
			Help: "Count of explicit region/currency selections by currency.",
		},
		[]string{"currency"},
	)
)

var registerOnce sync.Once

// MustRegister installs the pricing collectors with the default registry.
// Idempotent, so every wiring path may call it.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			CheckoutHandoffs,
			WebhookVerifyRequests,
			RegionChoices,
		)
	})
}
