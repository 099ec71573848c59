package catalog

import "nexgen-pricing/internal/domain/model"

// defaultOrder fixes the selector ordering of the catalog.
var defaultOrder = []model.CategoryKey{
	"whatsapp", "website", "crm", "sales", "marketing",
	"ads", "support", "orders", "payments", model.CategoryCustom,
}

// defaultEntries is the production price list. Per-deployment variation is
// applied on top via Overrides, never by editing this table.
var defaultEntries = map[model.CategoryKey]model.CatalogEntry{
	"whatsapp": {
		Key:   "whatsapp",
		Label: "WhatsApp Business Automation & Conversational AI",
		Tiers: map[model.TierName]model.TierOffer{
			model.TierBasic: {Price: 999, Features: []string{
				"Official WhatsApp Business API integration",
				"Enterprise WhatsApp number configuration",
				"Automated welcome & instant replies",
				"Lead capture from WhatsApp conversations",
				"FAQ-based rule automation",
				"Single core automation workflow",
				"Live testing & production deployment",
			}},
			model.TierAdvanced: {Price: 2499, Features: []string{
				"Everything in Basic",
				"CRM integration (auto lead creation & updates)",
				"Automated follow-ups & reminders",
				"Order, inquiry & ticket status automation",
				"Multiple workflow automations",
				"Business-hour logic & routing rules",
				"Conversion-focused message optimization",
			}},
			model.TierPremium: {Price: 4999, Features: []string{
				"Everything in Advanced",
				"AI-powered conversational flows",
				"Customer intent detection (sales / support / billing)",
				"Multi-agent & department routing",
				"Advanced analytics & conversation insights",
				"Scalable enterprise automation architecture",
				"Priority engineering & performance tuning",
			}},
		},
	},
	"website": {
		Key:   "website",
		Label: "Website Automation & Lead Intelligence",
		Tiers: map[model.TierName]model.TierOffer{
			model.TierBasic: {Price: 999, Features: []string{
				"Website form & inquiry automation",
				"Centralized lead storage system",
				"Instant user confirmation responses",
				"Spam filtering & validation logic",
				"Single form or funnel automation",
				"Live testing & deployment",
			}},
			model.TierAdvanced: {Price: 2299, Features: []string{
				"Everything in Basic",
				"Instant WhatsApp & email lead alerts",
				"CRM integration for automatic lead creation",
				"Multi-form & landing page automation",
				"Lead routing by source & form type",
				"Response-time optimization",
			}},
			model.TierPremium: {Price: 3999, Features: []string{
				"Everything in Advanced",
				"AI-based lead qualification & scoring",
				"Smart routing to sales or support teams",
				"Behavior-based automation triggers",
				"Conversion optimization logic",
				"Scalable automation architecture",
				"Priority optimization & tuning",
			}},
		},
	},
	"crm": {
		Key:   "crm",
		Label: "CRM Automation & Revenue Operations",
		Tiers: map[model.TierName]model.TierOffer{
			model.TierBasic: {Price: 1299, Features: []string{
				"Enterprise CRM setup & architecture",
				"Automated lead ingestion from all channels",
				"Sales pipeline & stage design",
				"Lead activity tracking automation",
				"Core CRM workflow automation",
				"Production deployment & validation",
			}},
			model.TierAdvanced: {Price: 2999, Features: []string{
				"Everything in Basic",
				"Advanced automation rules & triggers",
				"Automated task & follow-up ownership",
				"Team workflow automation",
				"Deal stage movement logic",
				"Revenue process optimization",
			}},
			model.TierPremium: {Price: 4999, Features: []string{
				"Everything in Advanced",
				"AI-powered lead scoring",
				"Pipeline forecasting & intelligence",
				"Deal risk & bottleneck detection",
				"Executive dashboards & reports",
				"Scalable CRM automation system",
				"Priority engineering & tuning",
			}},
		},
	},
	"sales": {
		Key:   "sales",
		Label: "Sales Automation & Deal Intelligence",
		Tiers: map[model.TierName]model.TierOffer{
			model.TierBasic: {Price: 1499, Features: []string{
				"Automated lead-to-rep assignment",
				"Sales task & reminder automation",
				"Deal tracking & activity logging",
				"Standard sales workflow automation",
				"Sales process stabilization",
			}},
			model.TierAdvanced: {Price: 3499, Features: []string{
				"Everything in Basic",
				"Pipeline movement automation",
				"Conversion tracking & metrics",
				"Automated follow-up sequences",
				"Sales velocity optimization",
				"Multi-stage deal logic",
			}},
			model.TierPremium: {Price: 5999, Features: []string{
				"Everything in Advanced",
				"AI-driven deal intelligence",
				"Revenue forecasting & probability modeling",
				"High-intent deal prioritization",
				"Sales bottleneck analysis",
				"Executive sales dashboards",
			}},
		},
	},
	"marketing": {
		Key:   "marketing",
		Label: "Marketing Automation & Growth Intelligence",
		Tiers: map[model.TierName]model.TierOffer{
			model.TierBasic: {Price: 999, Features: []string{
				"Email & campaign automation infrastructure",
				"Lead nurturing workflow design",
				"Campaign scheduling & delivery logic",
				"Audience & subscriber management",
				"Core marketing automation framework",
			}},
			model.TierAdvanced: {Price: 2499, Features: []string{
				"Everything in Basic",
				"Multi-channel automation (Email, WhatsApp, CRM)",
				"Advanced audience segmentation",
				"Behavior-based campaign triggers",
				"Campaign performance tracking",
			}},
			model.TierPremium: {Price: 4999, Features: []string{
				"Everything in Advanced",
				"AI-driven campaign optimization",
				"Advanced funnel & journey automation",
				"Customer lifecycle intelligence",
				"Conversion-focused growth automation",
				"Scalable marketing automation engine",
			}},
		},
	},
	"ads": {
		Key:   "ads",
		Label: "Ads, Leads & Revenue Routing",
		Tiers: map[model.TierName]model.TierOffer{
			model.TierBasic: {Price: 999, Features: []string{
				"Ad platform lead ingestion",
				"Automated lead capture & storage",
				"Basic lead routing logic",
				"Response-time optimization baseline",
			}},
			model.TierAdvanced: {Price: 2299, Features: []string{
				"Everything in Basic",
				"Instant WhatsApp & email follow-ups",
				"CRM integration for paid leads",
				"Campaign-based routing logic",
				"Lead handling optimization",
			}},
			model.TierPremium: {Price: 4999, Features: []string{
				"Everything in Advanced",
				"AI-powered lead routing",
				"High-intent lead identification",
				"Advanced conversion optimization",
				"Attribution & performance intelligence",
				"Enterprise ad automation infrastructure",
			}},
		},
	},
	"support": {
		Key:   "support",
		Label: "Customer Support Automation & Intelligence",
		Tiers: map[model.TierName]model.TierOffer{
			model.TierBasic: {Price: 1299, Features: []string{
				"Automated FAQ & chatbot setup",
				"Ticket creation & logging",
				"Basic issue categorization",
				"Support workflow stabilization",
			}},
			model.TierAdvanced: {Price: 2999, Features: []string{
				"Everything in Basic",
				"Intent detection (sales / support / billing)",
				"Automated routing & escalation",
				"Priority-based workflows",
				"Team workload automation",
			}},
			model.TierPremium: {Price: 5999, Features: []string{
				"Everything in Advanced",
				"AI-powered support intelligence",
				"Advanced SLA & analytics monitoring",
				"Customer sentiment insights",
				"Scalable enterprise support system",
				"Priority optimization & tuning",
			}},
		},
	},
	"orders": {
		Key:   "orders",
		Label: "Order Lifecycle & Operations Automation",
		Tiers: map[model.TierName]model.TierOffer{
			model.TierBasic: {Price: 1299, Features: []string{
				"Automated order confirmations",
				"Order status notifications",
				"Basic order workflow automation",
				"Single system integration",
			}},
			model.TierAdvanced: {Price: 2799, Features: []string{
				"Everything in Basic",
				"Returns & cancellation automation",
				"CRM & backend synchronization",
				"Customer communication automation",
				"Order lifecycle tracking",
			}},
			model.TierPremium: {Price: 4999, Features: []string{
				"Everything in Advanced",
				"Full order lifecycle orchestration",
				"Multi-system integration",
				"Operational performance analytics",
				"Scalable order automation engine",
			}},
		},
	},
	"payments": {
		Key:   "payments",
		Label: "Payment & Billing Automation",
		Tiers: map[model.TierName]model.TierOffer{
			model.TierBasic: {Price: 999, Features: []string{
				"Automated payment verification",
				"Transaction status monitoring",
				"Basic reconciliation logic",
				"Billing workflow foundation",
			}},
			model.TierAdvanced: {Price: 2499, Features: []string{
				"Everything in Basic",
				"Automated invoice generation",
				"Payment status synchronization",
				"Customer billing notifications",
				"Financial workflow automation",
			}},
			model.TierPremium: {Price: 4999, Features: []string{
				"Everything in Advanced",
				"AI-powered reconciliation",
				"Automated billing alerts",
				"Financial accuracy monitoring",
				"Enterprise-grade billing automation",
			}},
		},
	},
	model.CategoryCustom: {
		Key:   model.CategoryCustom,
		Label: "Custom AI & Enterprise Automation",
		Tiers: map[model.TierName]model.TierOffer{
			model.TierBasic: {Price: 9999, DisplayPrice: "$9,999+", Features: []string{
				"Custom automation strategy & AI architecture",
				"Single-system AI automation",
				"Business logic & decision flow implementation",
				"Secure production deployment",
				"Technical documentation & handover",
			}},
			model.TierAdvanced: {Price: 25000, DisplayPrice: "$25,000+", Features: []string{
				"Everything in Basic",
				"Multi-system & data-source integration",
				"Advanced automation & orchestration logic",
				"Process optimization & scalability planning",
				"High-availability system design",
				"Performance tuning & reliability testing",
			}},
			model.TierPremium: {Price: 50000, DisplayPrice: "$50,000+", Features: []string{
				"Everything in Advanced",
				"Enterprise-grade AI system architecture",
				"Custom AI decision-making & intelligence layer",
				"Large-scale automation infrastructure",
				"Security, compliance & risk controls",
				"Executive dashboards & insights",
				"Priority engineering & long-term roadmap",
			}},
		},
	},
}

// defaultPlanOrder and defaultPlans are the recurring management tiers,
// priced per month.
var defaultPlanOrder = []model.PlanName{model.PlanMonitor, model.PlanOptimize, model.PlanManaged}

var defaultPlans = map[model.PlanName]int64{
	model.PlanMonitor:  119,
	model.PlanOptimize: 259,
	model.PlanManaged:  499,
}
