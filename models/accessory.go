package models

// Accessory categories
const (
	AccessoryCategoryBattery = "battery"
	AccessoryCategoryCharger = "charger"
)

// Accessory represents a standalone battery or charger unit in the catalog
type Accessory struct {
	ID       string `json:"id"`
	Category string `json:"category"` // "battery" or "charger"
	Voltage  string `json:"voltage"`  // e.g., "60V"
	Capacity string `json:"capacity"` // e.g., "20Ah"
	Price    int64  `json:"price"`    // Tax-inclusive, in yuan
}

// UpsertAccessoryRequest represents the request body for creating or updating an accessory
// Example: {"id": "a-001", "category": "battery", "voltage": "60V", "capacity": "20Ah", "price": 680}
type UpsertAccessoryRequest struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Voltage  string `json:"voltage"`
	Capacity string `json:"capacity"`
	Price    int64  `json:"price"`
}

// AccessoryListResponse represents the response for listing accessories
type AccessoryListResponse struct {
	Accessories []Accessory `json:"accessories"`
}

// ValidAccessoryCategory reports whether category is one of the known values
func ValidAccessoryCategory(category string) bool {
	return category == AccessoryCategoryBattery || category == AccessoryCategoryCharger
}
