package domain

import (
	"errors"
	"fmt"
)

var (
	// Common domain errors
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidArgument = errors.New("invalid argument")

	// Pricing errors
	ErrInvalidSelection = errors.New("invalid selection")
	ErrNothingSelected  = errors.New("nothing selected")
	ErrCatalogIntegrity = errors.New("catalog integrity violation")

	// Webhook errors
	ErrSignatureMismatch = errors.New("signature mismatch")
)

// ErrConsultationOnly marks a setup-tier selection on a consultation-only
// category. It matches ErrInvalidSelection under errors.Is; callers that care
// about the distinction route the user to a consultation instead of alerting.
var ErrConsultationOnly = fmt.Errorf("consultation-only category: %w", ErrInvalidSelection)
