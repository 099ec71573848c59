package model

// CategoryKey identifies an automation product line in the pricing catalog.
type CategoryKey string

// CategoryCustom is the distinguished consultation-only category: its tier
// prices are advisory floors, not purchasable amounts, and its setup button
// navigates to a consultation instead of selecting a price.
const CategoryCustom CategoryKey = "custom"

// TierName is a one-time setup price tier within a category.
type TierName string

const (
	TierBasic    TierName = "basic"
	TierAdvanced TierName = "advanced"
	TierPremium  TierName = "premium"
)

// TierNames lists the required tiers in display order.
var TierNames = []TierName{TierBasic, TierAdvanced, TierPremium}

// PlanName is a recurring monthly management plan, orthogonal to category/tier.
type PlanName string

const (
	PlanMonitor  PlanName = "monitor"
	PlanOptimize PlanName = "optimize"
	PlanManaged  PlanName = "managed"
)

// TierOffer is one purchasable setup tier: a whole-unit price and an ordered
// feature list. DisplayPrice, when set, overrides the formatted price in the
// tier cards (open-ended floors such as "$9,999+").
type TierOffer struct {
	Price        int64    `yaml:"price"`
	DisplayPrice string   `yaml:"display_price,omitempty"`
	Features     []string `yaml:"features"`
}

// CatalogEntry is one automation category with its three setup tiers.
// Entries are immutable once the catalog is built.
type CatalogEntry struct {
	Key   CategoryKey
	Label string
	Tiers map[TierName]TierOffer
}

// ConsultationOnly reports whether the entry's tiers represent consultation
// price floors rather than purchasable amounts.
func (e CatalogEntry) ConsultationOnly() bool { return e.Key == CategoryCustom }
