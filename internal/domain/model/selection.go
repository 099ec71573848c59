package model

// Selection is the mutable three-slot state of one pricing session:
// automation category, setup tier, management plan. It lives for a single
// page session and is never persisted; a reload starts empty.
type Selection struct {
	AutomationKey    CategoryKey
	AutomationLabel  string
	SetupTier        TierName
	SetupAmount      int64
	ManagementPlan   PlanName
	ManagementAmount int64
}

// Total is derived on every read, never stored.
func (s *Selection) Total() int64 { return s.SetupAmount + s.ManagementAmount }

// SetAutomation records a new category and invalidates every downstream
// choice: tiers are category-specific, and a recurring plan chosen for one
// category is not meaningful after switching.
func (s *Selection) SetAutomation(key CategoryKey, label string) {
	s.AutomationKey = key
	s.AutomationLabel = label
	s.SetupTier = ""
	s.SetupAmount = 0
	s.ManagementPlan = ""
	s.ManagementAmount = 0
}

// BillingSnapshot is the pure data the billing summary renders from.
// Same Selection and currency always produce the same snapshot.
type BillingSnapshot struct {
	Automation     string `json:"automation"`
	Setup          string `json:"setup"`
	Management     string `json:"management"`
	Total          int64  `json:"total"`
	TotalFormatted string `json:"total_formatted"`
}
