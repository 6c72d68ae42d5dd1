package service

import (
	"fmt"

	"benbao-ev/models"
)

// attachTranslations rebuilds the display lines from a translation response.
// The collaborator contract is positional: translated[i] corresponds to
// originals[i], which in turn is the i-th vehicle line of the cart snapshot.
// Quantity and selected color are re-attached by that correspondence and the
// non-vehicle lines are merged back in, preserving the original cart order.
//
// The id, model and price of every vehicle are always taken from the
// original snapshot. An echoed id that disagrees with the original means the
// collaborator broke the ordering contract; that is treated as a failure
// rather than silently swapping metadata between two different vehicles.
func attachTranslations(lines []models.CartLine, originals, translated []models.Vehicle, callErr error) ([]models.CartLine, error) {
	if callErr != nil {
		return nil, callErr
	}
	if len(translated) != len(originals) {
		return nil, fmt.Errorf("translation returned %d vehicles, expected %d", len(translated), len(originals))
	}
	for i := range translated {
		if translated[i].ID != "" && translated[i].ID != originals[i].ID {
			return nil, fmt.Errorf("translation order mismatch at position %d: got id %q, expected %q",
				i, translated[i].ID, originals[i].ID)
		}
	}

	display := make([]models.CartLine, len(lines))
	next := 0
	for i, line := range lines {
		if line.Kind != models.LineKindVehicle {
			display[i] = line
			continue
		}

		vehicle := translated[next]
		original := originals[next]
		next++

		// Numeric and identifying fields are never trusted from the
		// collaborator.
		vehicle.ID = original.ID
		vehicle.Model = original.Model
		vehicle.Price = original.Price

		display[i] = models.CartLine{
			Kind:          models.LineKindVehicle,
			Vehicle:       &vehicle,
			SelectedColor: line.SelectedColor,
			Quantity:      line.Quantity,
		}
	}

	return display, nil
}
