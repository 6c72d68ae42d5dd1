package models

// Cart line kinds (discriminant of the CartLine union)
const (
	LineKindVehicle   = "vehicle"
	LineKindAccessory = "accessory"
)

// DefaultColor is the fallback selected color for vehicles with no color list
const DefaultColor = "Standard"

// CartLine is a tagged union: exactly one of Vehicle or Accessory is set,
// selected by Kind. Snapshots are copied at add time, not live-linked to the
// catalog, so later catalog edits never change an open quote.
type CartLine struct {
	Kind          string     `json:"kind"` // LineKindVehicle or LineKindAccessory
	Vehicle       *Vehicle   `json:"vehicle,omitempty"`
	Accessory     *Accessory `json:"accessory,omitempty"`
	SelectedColor string     `json:"selectedColor,omitempty"` // vehicle lines only
	Quantity      int        `json:"quantity"`                // always >= 1
}

// UnitPrice returns the price of one unit of this line
func (l CartLine) UnitPrice() int64 {
	switch l.Kind {
	case LineKindVehicle:
		return l.Vehicle.Price
	case LineKindAccessory:
		return l.Accessory.Price
	}
	return 0
}

// LineTotal returns UnitPrice * Quantity
func (l CartLine) LineTotal() int64 {
	return l.UnitPrice() * int64(l.Quantity)
}

// MergesWith reports whether other belongs to the same merge group: vehicle
// lines merge on (vehicle id, selected color), accessory lines on accessory id.
func (l CartLine) MergesWith(other CartLine) bool {
	if l.Kind != other.Kind {
		return false
	}
	switch l.Kind {
	case LineKindVehicle:
		return l.Vehicle.ID == other.Vehicle.ID && l.SelectedColor == other.SelectedColor
	case LineKindAccessory:
		return l.Accessory.ID == other.Accessory.ID
	}
	return false
}

// CloneLines returns a copy of lines safe to hand out to callers
func CloneLines(lines []CartLine) []CartLine {
	if lines == nil {
		return nil
	}
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}
