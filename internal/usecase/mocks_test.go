package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"nexgen-pricing/internal/catalog"
	"nexgen-pricing/internal/domain/model"
)

// ---- in-memory preference repository ----

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

// ---- fake checkout router ----

type fakeRouter struct {
	lastCurrency model.CurrencyCode
	lastAmount   int64
}

func (f *fakeRouter) CheckoutURL(currency model.CurrencyCode, amount int64) string {
	f.lastCurrency = currency
	f.lastAmount = amount
	provider := "stripe"
	if currency == model.CurrencyINR {
		provider = "razorpay"
	}
	return fmt.Sprintf("https://nexgen.test/payment/%s?amount=%d", provider, amount)
}

// ---- capturing renderer ----

type captureRenderer struct {
	tierCards    []model.CatalogEntry
	consultModes []bool
	billings     []model.BillingSnapshot
	advances     []Section
}

func (r *captureRenderer) RenderTierCards(entry model.CatalogEntry, consultationOnly bool) {
	r.tierCards = append(r.tierCards, entry)
	r.consultModes = append(r.consultModes, consultationOnly)
}

func (r *captureRenderer) RenderBillingSummary(snapshot model.BillingSnapshot) {
	r.billings = append(r.billings, snapshot)
}

func (r *captureRenderer) Advance(section Section) {
	r.advances = append(r.advances, section)
}

func (r *captureRenderer) lastAdvance() Section {
	if len(r.advances) == 0 {
		return ""
	}
	return r.advances[len(r.advances)-1]
}

// ---- helpers ----

func newLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func mustCatalog(opts ...catalog.Option) *catalog.Catalog {
	c, err := catalog.New(opts...)
	if err != nil {
		panic(err)
	}
	return c
}
