package service

import (
	"context"
	"errors"

	"benbao-ev/models"
)

// TranslatorInterface defines the contract for the translation collaborator.
// Output order MUST match input order: the quote session re-attaches
// quantities and selected colors by position. Implementations must pass id,
// model and price through unchanged if they echo them at all; callers never
// trust those fields and always keep the originals.
type TranslatorInterface interface {
	// TranslateVehicles translates the display fields (name, motor,
	// brakeTire, seatDash, controlFunc, additional, battery labels, colors)
	// of the given vehicle snapshots from Chinese to English.
	TranslateVehicles(ctx context.Context, vehicles []models.Vehicle) ([]models.Vehicle, error)
}

// NoopTranslator stands in when no translation credentials are configured.
// It always reports failure, so English documents degrade to the
// untranslated catalog text.
type NoopTranslator struct{}

// Ensure NoopTranslator implements TranslatorInterface
var _ TranslatorInterface = NoopTranslator{}

// TranslateVehicles always fails
func (NoopTranslator) TranslateVehicles(ctx context.Context, vehicles []models.Vehicle) ([]models.Vehicle, error) {
	return nil, errors.New("translation collaborator not configured")
}
