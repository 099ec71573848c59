package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"nexgen-pricing/internal/catalog"
	"nexgen-pricing/internal/domain"
	"nexgen-pricing/internal/domain/model"
	"nexgen-pricing/internal/domain/ports/adapter"
	"nexgen-pricing/internal/domain/ports/repository"
	"nexgen-pricing/internal/infra/logging"
)

// Section identifies a region of the pricing page the UI should bring into
// view after a successful transition (soft funnel guidance, never enforced).
type Section string

const (
	SectionManagement Section = "management"
	SectionBilling    Section = "billing"
)

// BillingRenderer is the presentation port. The engine hands it pure data
// snapshots and never touches presentation itself.
type BillingRenderer interface {
	RenderTierCards(entry model.CatalogEntry, consultationOnly bool)
	RenderBillingSummary(snapshot model.BillingSnapshot)
	Advance(section Section)
}

// PricingEngine is the three-slot selection state machine: automation
// category, setup tier, management plan. One engine per page session; its
// operations are serialized by the caller and each is atomic. Errors leave
// state unchanged and the engine usable.
type PricingEngine interface {
	SelectAutomation(key model.CategoryKey) error
	SelectSetupTier(tier model.TierName) error
	SelectManagementPlan(plan model.PlanName) error
	// ConfirmAndCheckout derives the total, reads the visitor's currency
	// preference (absent means USD) and returns the checkout handoff URL.
	ConfirmAndCheckout(ctx context.Context) (string, error)
	// BillingSummary returns a deterministic snapshot of the current state.
	BillingSummary() model.BillingSnapshot
}

var _ PricingEngine = (*pricingEngine)(nil)

type pricingEngine struct {
	catalog   *catalog.Catalog
	prefs     repository.PreferenceRepository
	router    adapter.CheckoutRouter
	renderer  BillingRenderer
	visitorID string
	currency  model.CurrencyCode // display currency, fixed for the session
	sel       model.Selection
	log       *zerolog.Logger
}

// NewPricingEngine constructs an engine with an empty selection. The display
// currency is pinned at session start: changing it goes through the region
// gate, which forces a reload and therefore a fresh session.
func NewPricingEngine(
	cat *catalog.Catalog,
	prefs repository.PreferenceRepository,
	router adapter.CheckoutRouter,
	renderer BillingRenderer,
	visitorID string,
	displayCurrency model.CurrencyCode,
	logger *zerolog.Logger,
) PricingEngine {
	if displayCurrency == "" {
		displayCurrency = model.CurrencyUSD
	}
	return &pricingEngine{
		catalog:   cat,
		prefs:     prefs,
		router:    router,
		renderer:  renderer,
		visitorID: visitorID,
		currency:  displayCurrency,
		log:       logger,
	}
}

func (e *pricingEngine) SelectAutomation(key model.CategoryKey) error {
	entry, ok := e.catalog.Lookup(key)
	if !ok {
		// no state change, no render
		return domain.ErrNotFound
	}
	if key == e.sel.AutomationKey {
		// re-selecting the current category keeps the tier and plan; only
		// the tier cards are painted again
		e.renderer.RenderTierCards(entry, entry.ConsultationOnly())
		return nil
	}

	e.sel.SetAutomation(key, entry.Label)
	e.renderer.RenderTierCards(entry, entry.ConsultationOnly())
	e.log.Debug().Str("automation", string(key)).Msg("automation selected")
	return nil
}

func (e *pricingEngine) SelectSetupTier(tier model.TierName) error {
	defer logging.TraceDuration(e.log, "PricingEngine.SelectSetupTier")()

	if e.sel.AutomationKey == "" {
		return fmt.Errorf("no automation selected: %w", domain.ErrInvalidSelection)
	}
	if e.sel.AutomationKey == model.CategoryCustom {
		// Consultation-only: the button is a navigation action, never a
		// price selection, and no numeric setup amount is ever set.
		return domain.ErrConsultationOnly
	}

	entry, ok := e.catalog.Lookup(e.sel.AutomationKey)
	if !ok {
		return fmt.Errorf("automation %q: %w", e.sel.AutomationKey, domain.ErrInvalidSelection)
	}
	offer, ok := entry.Tiers[tier]
	if !ok || offer.Price <= 0 {
		return fmt.Errorf("tier %q: %w", tier, domain.ErrInvalidSelection)
	}

	e.sel.SetupTier = tier
	e.sel.SetupAmount = offer.Price
	e.renderer.RenderBillingSummary(e.snapshot())
	e.renderer.Advance(SectionManagement)
	return nil
}

func (e *pricingEngine) SelectManagementPlan(plan model.PlanName) error {
	price, ok := e.catalog.ManagementPrice(plan)
	if !ok {
		return domain.ErrNotFound
	}

	e.sel.ManagementPlan = plan
	e.sel.ManagementAmount = price
	e.renderer.RenderBillingSummary(e.snapshot())
	e.renderer.Advance(SectionBilling)
	return nil
}

func (e *pricingEngine) ConfirmAndCheckout(ctx context.Context) (string, error) {
	total := e.sel.Total()
	if total <= 0 {
		return "", domain.ErrNothingSelected
	}

	currency := model.CurrencyUSD
	p, err := e.prefs.Get(ctx, e.visitorID)
	if err != nil {
		return "", fmt.Errorf("read preference: %w", err)
	}
	if p.Currency != "" {
		currency = p.Currency
	}

	url := e.router.CheckoutURL(currency, total)
	e.log.Info().
		Str("automation", string(e.sel.AutomationKey)).
		Str("currency", string(currency)).
		Int64("amount", total).
		Msg("checkout handoff")
	return url, nil
}

func (e *pricingEngine) BillingSummary() model.BillingSnapshot { return e.snapshot() }

func (e *pricingEngine) snapshot() model.BillingSnapshot {
	s := model.BillingSnapshot{
		Automation: "—",
		Setup:      "Not selected",
		Management: "Not selected",
		Total:      e.sel.Total(),
	}
	if e.sel.AutomationLabel != "" {
		s.Automation = e.sel.AutomationLabel
	}
	if e.sel.SetupAmount > 0 {
		s.Setup = model.FormatAmount(e.currency, e.sel.SetupAmount)
	}
	if e.sel.ManagementAmount > 0 {
		s.Management = model.FormatAmount(e.currency, e.sel.ManagementAmount) + " / month"
	}
	s.TotalFormatted = model.FormatAmount(e.currency, s.Total)
	return s
}
