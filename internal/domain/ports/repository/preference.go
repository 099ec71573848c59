package repository

import (
	"context"

	"nexgen-pricing/internal/domain/model"
)

// PreferenceRepository is the port for the visitor's durable currency/region
// choice. Two conceptual fields back it: the currency value and the "visitor
// has explicitly chosen" flag, kept distinct because a currency may be
// assigned from locale inference without counting as a choice.
type PreferenceRepository interface {
	// Get reads the stored preference. Absence of any stored value yields a
	// zero Preference and a nil error.
	Get(ctx context.Context, visitorID string) (model.Preference, error)

	// Set writes the currency and, if explicit is true, marks HasChosen.
	// Both fields are written before the call returns and are visible to
	// subsequent Gets.
	Set(ctx context.Context, visitorID string, currency model.CurrencyCode, explicit bool) error
}
