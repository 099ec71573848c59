package payment

import (
	"testing"

	"nexgen-pricing/internal/domain/model"
)

func TestProviderFor(t *testing.T) {
	t.Parallel()

	if got := ProviderFor(model.CurrencyINR); got != ProviderRazorpay {
		t.Fatalf("INR provider = %q", got)
	}
	if got := ProviderFor(model.CurrencyUSD); got != ProviderStripe {
		t.Fatalf("USD provider = %q", got)
	}
	if got := ProviderFor(""); got != ProviderStripe {
		t.Fatalf("empty currency provider = %q", got)
	}
}

func TestRouter_CheckoutURL(t *testing.T) {
	t.Parallel()

	r := NewRouter("https://nexgen.example.com")
	if got, want := r.CheckoutURL(model.CurrencyINR, 1500), "https://nexgen.example.com/payment/razorpay?amount=1500"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got, want := r.CheckoutURL(model.CurrencyUSD, 2598), "https://nexgen.example.com/payment/stripe?amount=2598"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRouter_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	r := NewRouter("https://nexgen.example.com/")
	if got, want := r.CheckoutURL(model.CurrencyUSD, 10), "https://nexgen.example.com/payment/stripe?amount=10"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
