package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"nexgen-pricing/internal/domain"
	"nexgen-pricing/internal/domain/model"
)

// Catalog is the read-only pricing table: automation categories with their
// setup tiers, plus the recurring management plans. It is built once,
// validated at construction, and shared without further mutation.
type Catalog struct {
	entries   map[model.CategoryKey]model.CatalogEntry
	order     []model.CategoryKey
	plans     map[model.PlanName]int64
	planOrder []model.PlanName
}

// Overrides carries per-deployment price adjustments. Only prices can vary;
// the category and tier sets are fixed.
type Overrides struct {
	Setup      map[string]map[string]int64 `yaml:"setup"`
	Management map[string]int64            `yaml:"management"`
}

type Option func(*builder) error

type builder struct {
	overrides []Overrides
}

// WithOverrides applies in-memory price overrides on top of the defaults.
func WithOverrides(o Overrides) Option {
	return func(b *builder) error {
		b.overrides = append(b.overrides, o)
		return nil
	}
}

// WithOverridesFile loads YAML price overrides from disk.
func WithOverridesFile(path string) Option {
	return func(b *builder) error {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read overrides: %w", err)
		}
		var o Overrides
		if err := yaml.Unmarshal(raw, &o); err != nil {
			return fmt.Errorf("parse overrides: %w", err)
		}
		b.overrides = append(b.overrides, o)
		return nil
	}
}

// New builds the catalog from the default table plus any overrides and
// validates it. A validation failure is fatal at startup: serving an
// inconsistent price list is worse than not starting.
func New(opts ...Option) (*Catalog, error) {
	var b builder
	for _, opt := range opts {
		if err := opt(&b); err != nil {
			return nil, err
		}
	}

	c := &Catalog{
		entries:   make(map[model.CategoryKey]model.CatalogEntry, len(defaultEntries)),
		order:     append([]model.CategoryKey(nil), defaultOrder...),
		plans:     make(map[model.PlanName]int64, len(defaultPlans)),
		planOrder: append([]model.PlanName(nil), defaultPlanOrder...),
	}
	for key, entry := range defaultEntries {
		tiers := make(map[model.TierName]model.TierOffer, len(entry.Tiers))
		for name, offer := range entry.Tiers {
			offer.Features = append([]string(nil), offer.Features...)
			tiers[name] = offer
		}
		entry.Tiers = tiers
		c.entries[key] = entry
	}
	for name, price := range defaultPlans {
		c.plans[name] = price
	}

	for _, o := range b.overrides {
		if err := c.apply(o); err != nil {
			return nil, err
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) apply(o Overrides) error {
	for cat, tiers := range o.Setup {
		entry, ok := c.entries[model.CategoryKey(cat)]
		if !ok {
			return fmt.Errorf("override for unknown category %q: %w", cat, domain.ErrCatalogIntegrity)
		}
		for tier, price := range tiers {
			offer, ok := entry.Tiers[model.TierName(tier)]
			if !ok {
				return fmt.Errorf("override for unknown tier %s/%s: %w", cat, tier, domain.ErrCatalogIntegrity)
			}
			offer.Price = price
			entry.Tiers[model.TierName(tier)] = offer
		}
	}
	for plan, price := range o.Management {
		if _, ok := c.plans[model.PlanName(plan)]; !ok {
			return fmt.Errorf("override for unknown plan %q: %w", plan, domain.ErrCatalogIntegrity)
		}
		c.plans[model.PlanName(plan)] = price
	}
	return nil
}

// validate enforces the integrity rules: every category carries exactly the
// three tiers, and every purchasable tier has a strictly positive price.
// The custom category is exempt from the price rule only; its figures are
// advisory floors.
func (c *Catalog) validate() error {
	for _, key := range c.order {
		entry, ok := c.entries[key]
		if !ok {
			return fmt.Errorf("category %q listed but not defined: %w", key, domain.ErrCatalogIntegrity)
		}
		if len(entry.Tiers) != len(model.TierNames) {
			return fmt.Errorf("category %q has %d tiers, want %d: %w", key, len(entry.Tiers), len(model.TierNames), domain.ErrCatalogIntegrity)
		}
		for _, tier := range model.TierNames {
			offer, ok := entry.Tiers[tier]
			if !ok {
				return fmt.Errorf("category %q missing tier %q: %w", key, tier, domain.ErrCatalogIntegrity)
			}
			if !entry.ConsultationOnly() && offer.Price <= 0 {
				return fmt.Errorf("category %q tier %q has non-positive price %d: %w", key, tier, offer.Price, domain.ErrCatalogIntegrity)
			}
		}
	}
	for _, plan := range c.planOrder {
		price, ok := c.plans[plan]
		if !ok {
			return fmt.Errorf("plan %q listed but not defined: %w", plan, domain.ErrCatalogIntegrity)
		}
		if price <= 0 {
			return fmt.Errorf("plan %q has non-positive price %d: %w", plan, price, domain.ErrCatalogIntegrity)
		}
	}
	return nil
}

// Lookup returns the entry for a category key. The returned entry carries its
// own tier map, so callers cannot mutate the catalog through it.
func (c *Catalog) Lookup(key model.CategoryKey) (model.CatalogEntry, bool) {
	entry, ok := c.entries[key]
	if !ok {
		return model.CatalogEntry{}, false
	}
	tiers := make(map[model.TierName]model.TierOffer, len(entry.Tiers))
	for name, offer := range entry.Tiers {
		tiers[name] = offer
	}
	entry.Tiers = tiers
	return entry, true
}

// ListCategories returns the category keys in selector order.
func (c *Catalog) ListCategories() []model.CategoryKey {
	return append([]model.CategoryKey(nil), c.order...)
}

// ManagementPrice returns the monthly price of a management plan.
func (c *Catalog) ManagementPrice(plan model.PlanName) (int64, bool) {
	price, ok := c.plans[plan]
	return price, ok
}

// ListPlans returns the management plan names in display order.
func (c *Catalog) ListPlans() []model.PlanName {
	return append([]model.PlanName(nil), c.planOrder...)
}
