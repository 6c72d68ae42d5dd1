package models

// Vehicle represents one EV model/trim in the catalog
type Vehicle struct {
	ID          string   `json:"id"`
	Model       string   `json:"model"`       // Model code (e.g., "BB-T9")
	Name        string   `json:"name"`        // Display name
	Battery     []string `json:"battery"`     // Supported battery specs, ordered, no duplicates
	Motor       string   `json:"motor"`
	BrakeTire   string   `json:"brakeTire"`
	SeatDash    string   `json:"seatDash"`
	ControlFunc string   `json:"controlFunc"`
	Additional  string   `json:"additional"`
	Colors      []string `json:"colors"`      // Available colors, ordered, no duplicates
	Price       int64    `json:"price"`       // Tax-inclusive, in yuan
}

// UpsertVehicleRequest represents the request body for creating or updating a vehicle
// Example: {"id": "v-001", "model": "BB-T9", "name": "奔宝T9豪华版", "battery": ["60V 20Ah", "72V 32Ah"], "colors": ["红色", "黑色"], "price": 4580}
type UpsertVehicleRequest struct {
	ID          string   `json:"id"`
	Model       string   `json:"model"`
	Name        string   `json:"name"`
	Battery     []string `json:"battery"`
	Motor       string   `json:"motor"`
	BrakeTire   string   `json:"brakeTire"`
	SeatDash    string   `json:"seatDash"`
	ControlFunc string   `json:"controlFunc"`
	Additional  string   `json:"additional"`
	Colors      []string `json:"colors"`
	Price       int64    `json:"price"`
}

// VehicleListResponse represents the response for listing vehicles
type VehicleListResponse struct {
	Vehicles []Vehicle `json:"vehicles"`
}
