package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"nexgen-pricing/internal/domain/model"
	"nexgen-pricing/internal/domain/ports/repository"
)

// GateState is the region gate's position for one visitor.
type GateState string

const (
	GateUnresolved GateState = "unresolved"
	GateResolved   GateState = "resolved"
)

// RegionResolution is the outcome of resolving the gate on page load.
// Prompt means the blocking region picker must be shown: a currency inferred
// from locale never satisfies the gate, only an explicit choice does.
type RegionResolution struct {
	State    GateState
	Currency model.CurrencyCode
	Prompt   bool
}

// RegionGateUseCase enforces the first-visit currency choice.
type RegionGateUseCase interface {
	// Resolve reads the stored preference. With an explicit choice on record
	// the gate is Resolved; otherwise it infers a provisional currency from
	// the visitor's locale, persists it as non-explicit, and keeps prompting.
	Resolve(ctx context.Context, visitorID, locale string) (RegionResolution, error)

	// Choose records the visitor's explicit currency selection and resolves
	// the gate, returning the normalized currency that was stored. The caller
	// triggers a full reload afterwards so every currency-dependent price
	// recomputes from scratch.
	Choose(ctx context.Context, visitorID string, currency model.CurrencyCode) (model.CurrencyCode, error)
}

var _ RegionGateUseCase = (*regionUC)(nil)

type regionUC struct {
	prefs repository.PreferenceRepository
	def   model.CurrencyCode
	log   *zerolog.Logger
}

func NewRegionGateUseCase(prefs repository.PreferenceRepository, defaultCurrency model.CurrencyCode, logger *zerolog.Logger) RegionGateUseCase {
	if defaultCurrency == "" {
		defaultCurrency = model.CurrencyUSD
	}
	return &regionUC{prefs: prefs, def: defaultCurrency, log: logger}
}

func (r *regionUC) Resolve(ctx context.Context, visitorID, locale string) (RegionResolution, error) {
	p, err := r.prefs.Get(ctx, visitorID)
	if err != nil {
		return RegionResolution{}, err
	}
	if p.HasChosen {
		return RegionResolution{State: GateResolved, Currency: p.Currency}, nil
	}

	currency := p.Currency
	if currency == "" {
		currency = InferCurrency(locale, r.def)
		if err := r.prefs.Set(ctx, visitorID, currency, false); err != nil {
			return RegionResolution{}, err
		}
		r.log.Debug().Str("visitor", visitorID).Str("locale", locale).
			Str("currency", string(currency)).Msg("inferred provisional currency")
	}
	return RegionResolution{State: GateUnresolved, Currency: currency, Prompt: true}, nil
}

func (r *regionUC) Choose(ctx context.Context, visitorID string, currency model.CurrencyCode) (model.CurrencyCode, error) {
	c, err := model.ParseCurrency(string(currency))
	if err != nil {
		return "", err
	}
	if err := r.prefs.Set(ctx, visitorID, c, true); err != nil {
		return "", err
	}
	r.log.Info().Str("visitor", visitorID).Str("currency", string(c)).Msg("region selected")
	return c, nil
}

// InferCurrency maps a locale (a single BCP-47 tag or an Accept-Language
// list) to a provisional currency: Hindi or any Indian region tag means INR,
// everything else the default.
func InferCurrency(locale string, def model.CurrencyCode) model.CurrencyCode {
	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return def
	}
	tag := tags[0]
	if base, conf := tag.Base(); conf != language.No && base.String() == "hi" {
		return model.CurrencyINR
	}
	if region, conf := tag.Region(); conf != language.No && region.String() == "IN" {
		return model.CurrencyINR
	}
	return def
}
