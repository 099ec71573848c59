package model

import (
	"errors"
	"testing"

	"nexgen-pricing/internal/domain"
)

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    CurrencyCode
		wantErr bool
	}{
		{"USD", CurrencyUSD, false},
		{"usd", CurrencyUSD, false},
		{" INR ", CurrencyINR, false},
		{"EUR", "", true},
		{"", "", true},
	}
	for _, tc := range cases {
		got, err := ParseCurrency(tc.in)
		if tc.wantErr {
			if !errors.Is(err, domain.ErrInvalidArgument) {
				t.Fatalf("ParseCurrency(%q): want ErrInvalidArgument, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseCurrency(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseCurrency(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	if got := FormatAmount(CurrencyUSD, 2598); got != "$2,598" {
		t.Fatalf("want $2,598, got %q", got)
	}
	if got := FormatAmount(CurrencyUSD, 999); got != "$999" {
		t.Fatalf("want $999, got %q", got)
	}
	if got := FormatAmount(CurrencyINR, 50000); got != "₹50,000" {
		t.Fatalf("want ₹50,000, got %q", got)
	}
}

func TestSelection_SetAutomationResetsDownstream(t *testing.T) {
	t.Parallel()

	var s Selection
	s.SetAutomation("whatsapp", "WhatsApp")
	s.SetupTier, s.SetupAmount = TierAdvanced, 2499
	s.ManagementPlan, s.ManagementAmount = PlanOptimize, 259

	if got := s.Total(); got != 2758 {
		t.Fatalf("total = %d, want 2758", got)
	}

	s.SetAutomation("crm", "CRM")
	if s.SetupTier != "" || s.SetupAmount != 0 {
		t.Fatalf("setup not reset: %q/%d", s.SetupTier, s.SetupAmount)
	}
	if s.ManagementPlan != "" || s.ManagementAmount != 0 {
		t.Fatalf("management not reset: %q/%d", s.ManagementPlan, s.ManagementAmount)
	}
	if got := s.Total(); got != 0 {
		t.Fatalf("total after reset = %d, want 0", got)
	}
}

func TestPreferenceIsZero(t *testing.T) {
	t.Parallel()

	if !(Preference{}).IsZero() {
		t.Fatal("empty preference should be zero")
	}
	if (Preference{Currency: CurrencyUSD}).IsZero() {
		t.Fatal("preference with currency should not be zero")
	}
}
