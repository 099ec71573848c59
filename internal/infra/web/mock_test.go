package web

import (
	"context"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"nexgen-pricing/internal/catalog"
	"nexgen-pricing/internal/domain/model"
	"nexgen-pricing/internal/infra/payment"
	"nexgen-pricing/internal/usecase"
)

const (
	testOrigin        = "https://nexgen.test"
	testWebhookSecret = "test_webhook_secret"
)

type memPrefRepo struct {
	mu    sync.Mutex
	prefs map[string]model.Preference
}

func newMemPrefRepo() *memPrefRepo {
	return &memPrefRepo{prefs: make(map[string]model.Preference)}
}

func (r *memPrefRepo) Get(_ context.Context, visitorID string) (model.Preference, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.prefs[visitorID], nil
}

func (r *memPrefRepo) Set(_ context.Context, visitorID string, currency model.CurrencyCode, explicit bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.prefs[visitorID]
	p.Currency = currency
	if explicit {
		p.HasChosen = true
	}
	r.prefs[visitorID] = p
	return nil
}

func newLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func newTestRouter() (*chi.Mux, *memPrefRepo) {
	cat, err := catalog.New()
	if err != nil {
		panic(err)
	}
	prefs := newMemPrefRepo()
	logger := newLogger()
	checkout := payment.NewRouter(testOrigin)

	factory := func(visitorID string, currency model.CurrencyCode, renderer usecase.BillingRenderer) usecase.PricingEngine {
		return usecase.NewPricingEngine(cat, prefs, checkout, renderer, visitorID, currency, logger)
	}
	sessions := usecase.NewSessionManager(factory, 0, logger)
	region := usecase.NewRegionGateUseCase(prefs, model.CurrencyUSD, logger)

	srv := NewServer(sessions, region, prefs, cat, nil, testWebhookSecret, logger)
	return srv.Routes(), prefs
}
