package service

import (
	"benbao-ev/models"
)

// Cart holds the ordered line items of one quote-building session. It owns
// only its own line list; it never touches the persisted catalog. Quantities
// are always >= 1 and line order is insertion order, with merges updating
// quantity in place.
//
// Cart is not safe for concurrent use; the owning QuoteSession serializes
// access.
type Cart struct {
	lines []models.CartLine
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// AddVehicle adds one unit of the given vehicle snapshot to the cart.
// Color resolution: the supplied color, else the vehicle's first listed
// color, else the "Standard" placeholder. If a line with the same
// (vehicle id, resolved color) exists its quantity is incremented, otherwise
// a new line is appended with quantity 1. A nil vehicle is a no-op.
func (c *Cart) AddVehicle(vehicle *models.Vehicle, color string) {
	if vehicle == nil {
		return
	}

	resolved := color
	if resolved == "" {
		if len(vehicle.Colors) > 0 {
			resolved = vehicle.Colors[0]
		} else {
			resolved = models.DefaultColor
		}
	}

	snapshot := *vehicle
	line := models.CartLine{
		Kind:          models.LineKindVehicle,
		Vehicle:       &snapshot,
		SelectedColor: resolved,
		Quantity:      1,
	}
	c.merge(line)
}

// AddAccessory adds one unit of the given accessory snapshot, merging by
// accessory id. A nil accessory is a no-op.
func (c *Cart) AddAccessory(accessory *models.Accessory) {
	if accessory == nil {
		return
	}

	snapshot := *accessory
	line := models.CartLine{
		Kind:      models.LineKindAccessory,
		Accessory: &snapshot,
		Quantity:  1,
	}
	c.merge(line)
}

func (c *Cart) merge(line models.CartLine) {
	for i := range c.lines {
		if c.lines[i].MergesWith(line) {
			c.lines[i].Quantity += line.Quantity
			return
		}
	}
	c.lines = append(c.lines, line)
}

// RemoveLine removes the line at index. An out-of-range index is rejected
// and the remaining order is left intact. Returns whether a line was removed.
func (c *Cart) RemoveLine(index int) bool {
	if index < 0 || index >= len(c.lines) {
		return false
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return true
}

// SetQuantity replaces the quantity at index. Quantities below 1 and
// out-of-range indices are ignored. Returns whether the quantity changed.
func (c *Cart) SetQuantity(index, qty int) bool {
	if qty < 1 || index < 0 || index >= len(c.lines) {
		return false
	}
	c.lines[index].Quantity = qty
	return true
}

// Lines returns a copy of the cart lines in insertion order
func (c *Cart) Lines() []models.CartLine {
	return models.CloneLines(c.lines)
}

// Len returns the number of lines
func (c *Cart) Len() int {
	return len(c.lines)
}

// Total returns the sum of price*quantity over all lines. Translation never
// changes numeric fields, so the displayed total always equals this value.
func (c *Cart) Total() int64 {
	return LinesTotal(c.lines)
}

// LinesTotal sums price*quantity over an arbitrary line slice
func LinesTotal(lines []models.CartLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.LineTotal()
	}
	return total
}
