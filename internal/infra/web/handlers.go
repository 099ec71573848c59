package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"nexgen-pricing/internal/domain"
	"nexgen-pricing/internal/domain/model"
	"nexgen-pricing/internal/infra/metrics"
	"nexgen-pricing/internal/infra/payment"
	"nexgen-pricing/internal/usecase"
)

// consultationPath is where consultation-only tier selections are routed
// instead of mutating price state.
const consultationPath = "/#consultation"

type errorResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses. Every error here is
// locally recoverable: the session stays usable afterwards.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrConsultationOnly):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Redirect: consultationPath})
	case errors.Is(err, domain.ErrNothingSelected):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "select a valid plan"})
	case errors.Is(err, domain.ErrInvalidSelection):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// ---- catalog ----

type categoryItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type planItem struct {
	Plan         string `json:"plan"`
	Price        int64  `json:"price"`
	PriceDisplay string `json:"price_display"`
}

type tierItem struct {
	Tier         string   `json:"tier"`
	Price        int64    `json:"price"`
	PriceDisplay string   `json:"price_display"`
	Features     []string `json:"features"`
}

type catalogEntryResponse struct {
	Key              string     `json:"key"`
	Label            string     `json:"label"`
	ConsultationOnly bool       `json:"consultation_only"`
	Tiers            []tierItem `json:"tiers"`
}

func entryResponse(entry model.CatalogEntry) catalogEntryResponse {
	resp := catalogEntryResponse{
		Key:              string(entry.Key),
		Label:            entry.Label,
		ConsultationOnly: entry.ConsultationOnly(),
	}
	for _, tier := range model.TierNames {
		offer := entry.Tiers[tier]
		display := offer.DisplayPrice
		if display == "" {
			display = model.FormatAmount(model.CurrencyUSD, offer.Price)
		}
		resp.Tiers = append(resp.Tiers, tierItem{
			Tier:         string(tier),
			Price:        offer.Price,
			PriceDisplay: display,
			Features:     offer.Features,
		})
	}
	return resp
}

func (s *Server) handleCatalogList(w http.ResponseWriter, r *http.Request) {
	var categories []categoryItem
	for _, key := range s.catalog.ListCategories() {
		entry, _ := s.catalog.Lookup(key)
		categories = append(categories, categoryItem{Key: string(key), Label: entry.Label})
	}
	var plans []planItem
	for _, plan := range s.catalog.ListPlans() {
		price, _ := s.catalog.ManagementPrice(plan)
		plans = append(plans, planItem{
			Plan:         string(plan),
			Price:        price,
			PriceDisplay: model.FormatAmount(model.CurrencyUSD, price) + " / month",
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"categories": categories,
		"plans":      plans,
	})
}

func (s *Server) handleCatalogGet(w http.ResponseWriter, r *http.Request) {
	key := model.CategoryKey(chi.URLParam(r, "key"))
	entry, ok := s.catalog.Lookup(key)
	if !ok {
		writeError(w, domain.ErrNotFound)
		return
	}
	writeJSON(w, http.StatusOK, entryResponse(entry))
}

// ---- region gate ----

func (s *Server) handleRegionResolve(w http.ResponseWriter, r *http.Request) {
	visitor := s.visitorID(w, r)
	res, err := s.region.Resolve(r.Context(), visitor, r.Header.Get("Accept-Language"))
	if err != nil {
		s.log.Error().Err(err).Msg("region resolve failed")
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"state":    string(res.State),
		"currency": string(res.Currency),
		"prompt":   res.Prompt,
	})
}

func (s *Server) handleRegionChoose(w http.ResponseWriter, r *http.Request) {
	visitor := s.visitorID(w, r)

	var req struct {
		Currency string `json:"currency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}
	chosen, err := s.region.Choose(r.Context(), visitor, model.CurrencyCode(req.Currency))
	if err != nil {
		writeError(w, err)
		return
	}
	metrics.RegionChoices.WithLabelValues(string(chosen)).Inc()

	// Hard reload on the client guarantees currency-dependent pricing
	// recomputes from scratch.
	writeJSON(w, http.StatusOK, map[string]any{"reload": true})
}

// ---- pricing sessions ----

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	visitor := s.visitorID(w, r)

	p, err := s.prefs.Get(r.Context(), visitor)
	if err != nil {
		s.log.Error().Err(err).Msg("preference read failed")
		writeError(w, err)
		return
	}
	currency := p.Currency
	if currency == "" {
		currency = model.CurrencyUSD
	}

	sess := s.sessions.Create(visitor, currency)
	writeJSON(w, http.StatusCreated, map[string]any{
		"session_id": sess.ID,
		"currency":   string(currency),
	})
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*usecase.Session, bool) {
	sess, ok := s.sessions.Get(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "session not found"})
		return nil, false
	}
	return sess, true
}

func (s *Server) handleSelectAutomation(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}

	if err := sess.Do(func(e usecase.PricingEngine) error {
		return e.SelectAutomation(model.CategoryKey(req.Key))
	}); err != nil {
		writeError(w, err)
		return
	}

	entry, consult, rendered := sess.Renderer.TierCards()
	if !rendered {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}
	resp := entryResponse(entry)
	resp.ConsultationOnly = consult
	writeJSON(w, http.StatusOK, resp)
}

type billingResponse struct {
	Billing model.BillingSnapshot `json:"billing"`
	Advance string                `json:"advance,omitempty"`
}

func (s *Server) handleSelectSetup(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Tier string `json:"tier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}

	if err := sess.Do(func(e usecase.PricingEngine) error {
		return e.SelectSetupTier(model.TierName(req.Tier))
	}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, billingResponse{
		Billing: sess.Renderer.Billing(),
		Advance: string(sess.Renderer.Section()),
	})
}

func (s *Server) handleSelectManagement(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Plan string `json:"plan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ErrInvalidArgument)
		return
	}

	if err := sess.Do(func(e usecase.PricingEngine) error {
		return e.SelectManagementPlan(model.PlanName(req.Plan))
	}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, billingResponse{
		Billing: sess.Renderer.Billing(),
		Advance: string(sess.Renderer.Section()),
	})
}

func (s *Server) handleBilling(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var snapshot model.BillingSnapshot
	_ = sess.Do(func(e usecase.PricingEngine) error {
		snapshot = e.BillingSummary()
		return nil
	})
	writeJSON(w, http.StatusOK, billingResponse{Billing: snapshot})
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	var url string
	err := sess.Do(func(e usecase.PricingEngine) error {
		var cerr error
		url, cerr = e.ConfirmAndCheckout(r.Context())
		return cerr
	})
	if err != nil {
		writeError(w, err)
		return
	}

	provider := payment.ProviderStripe
	if strings.Contains(url, "/payment/"+payment.ProviderRazorpay) {
		provider = payment.ProviderRazorpay
	}
	metrics.CheckoutHandoffs.WithLabelValues(provider).Inc()
	writeJSON(w, http.StatusOK, map[string]any{"url": url})
}

// ---- payment webhook ----

type razorpayEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID     string `json:"id"`
				Amount int64  `json:"amount"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

func (s *Server) handleRazorpayWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("X-Razorpay-Signature")
	if !payment.VerifyRazorpayWebhookSignature(s.webhookSecret, body, signature) {
		metrics.WebhookVerifyRequests.WithLabelValues(payment.ProviderRazorpay, "fail").Inc()
		s.log.Warn().Err(domain.ErrSignatureMismatch).Msg("razorpay webhook rejected")
		http.Error(w, "invalid signature", http.StatusBadRequest)
		return
	}
	metrics.WebhookVerifyRequests.WithLabelValues(payment.ProviderRazorpay, "ok").Inc()

	var evt razorpayEvent
	if err := json.Unmarshal(body, &evt); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if evt.Event == "payment.captured" {
		// Verification gate only; persistence and activation live elsewhere.
		s.log.Info().
			Str("payment_id", evt.Payload.Payment.Entity.ID).
			Int64("amount", evt.Payload.Payment.Entity.Amount).
			Msg("razorpay payment captured")
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
