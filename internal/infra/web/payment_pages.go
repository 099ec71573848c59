package web

import (
	"fmt"
	"net/http"
	"strconv"

	"nexgen-pricing/internal/domain/model"
)

// The /payment/* pages are the far side of the checkout handoff. The pricing
// core's contract ends at the URL; these handlers exist so the handoff lands
// somewhere real.

func (s *Server) paymentAmount(r *http.Request) (int64, error) {
	amount, err := strconv.ParseInt(r.URL.Query().Get("amount"), 10, 64)
	if err != nil || amount <= 0 {
		return 0, fmt.Errorf("invalid amount")
	}
	return amount, nil
}

func (s *Server) handleStripePayment(w http.ResponseWriter, r *http.Request) {
	if s.gateway == nil {
		http.Error(w, "stripe payments not configured", http.StatusServiceUnavailable)
		return
	}
	amount, err := s.paymentAmount(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, payURL, err := s.gateway.Request(r.Context(), amount, model.CurrencyUSD,
		"NexGen automation setup & management", map[string]string{"source": "pricing"})
	if err != nil {
		s.log.Error().Err(err).Int64("amount", amount).Msg("stripe checkout request failed")
		http.Error(w, "payment provider unavailable", http.StatusBadGateway)
		return
	}
	http.Redirect(w, r, payURL, http.StatusSeeOther)
}

func (s *Server) handleRazorpayPayment(w http.ResponseWriter, r *http.Request) {
	amount, err := s.paymentAmount(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head>
    <title>Razorpay Checkout</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
    <h1>Complete your payment</h1>
    <p>Amount due: %s</p>
</body>
</html>`, model.FormatAmount(model.CurrencyINR, amount))
}

func (s *Server) handlePaymentSuccess(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head>
    <title>Payment Successful</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; text-align: center; padding: 50px; }
        .success { color: #4CAF50; }
    </style>
</head>
<body>
    <h1 class="success">Payment Successful!</h1>
    <p>Your payment has been processed. Our team will reach out to begin your automation setup.</p>
    <p><a href="/">Back to NexGen AI</a></p>
</body>
</html>`)
}

func (s *Server) handlePaymentFailed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head>
    <title>Payment Failed</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; text-align: center; padding: 50px; }
        .error { color: #F44336; }
    </style>
</head>
<body>
    <h1 class="error">Payment Failed</h1>
    <p>Your payment could not be processed. Please try again.</p>
    <p><a href="/">Back to NexGen AI</a></p>
</body>
</html>`)
}
