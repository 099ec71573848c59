package model

import (
	"strings"

	"nexgen-pricing/internal/domain"
)

// CurrencyCode is a closed enumeration of supported billing currencies.
type CurrencyCode string

const (
	CurrencyUSD CurrencyCode = "USD"
	CurrencyINR CurrencyCode = "INR"
)

// ParseCurrency validates a currency string against the supported set.
func ParseCurrency(s string) (CurrencyCode, error) {
	switch CurrencyCode(strings.ToUpper(strings.TrimSpace(s))) {
	case CurrencyUSD:
		return CurrencyUSD, nil
	case CurrencyINR:
		return CurrencyINR, nil
	}
	return "", domain.ErrInvalidArgument
}

// Symbol returns the display prefix for formatted amounts.
func (c CurrencyCode) Symbol() string {
	if c == CurrencyINR {
		return "₹"
	}
	return "$"
}

// Preference is the visitor's persisted currency/region choice.
//
// Currency may be set by locale inference before the visitor explicitly
// confirms, so HasChosen implies Currency is set but not the reverse.
type Preference struct {
	Currency  CurrencyCode
	HasChosen bool
}

func (p Preference) IsZero() bool { return p.Currency == "" && !p.HasChosen }
