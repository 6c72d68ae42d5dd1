package models

// QuoteState represents a quote-building session as returned to the client
// Example response:
// {
//   "id": "2f1c9a7e-...",
//   "language": "zh",
//   "docType": "quotation",
//   "translating": false,
//   "lines": [...],
//   "displayLines": [...],
//   "total": 20500,
//   "createdAt": "2026-09-01T10:30:00Z"
// }
type QuoteState struct {
	ID           string     `json:"id"`
	Language     string     `json:"language"`
	DocType      string     `json:"docType"`
	Translating  bool       `json:"translating"`
	Lines        []CartLine `json:"lines"`        // untranslated cart, insertion order
	DisplayLines []CartLine `json:"displayLines"` // possibly translated working copy
	Total        int64      `json:"total"`
	CreatedAt    string     `json:"createdAt"`
}

// QuoteListResponse represents the response for listing open quote sessions
type QuoteListResponse struct {
	Quotes []QuoteState `json:"quotes"`
}

// AddVehicleLineRequest represents the request body for adding a vehicle line
// Example: {"vehicleId": "v-001", "color": "红色"}
type AddVehicleLineRequest struct {
	VehicleID string `json:"vehicleId"`
	Color     string `json:"color,omitempty"`
}

// AddAccessoryLineRequest represents the request body for adding an accessory line
// Example: {"accessoryId": "a-001"}
type AddAccessoryLineRequest struct {
	AccessoryID string `json:"accessoryId"`
}

// SetQuantityRequest represents the request body for updating a line quantity
// Example: {"quantity": 3}
type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetLanguageRequest represents the request body for switching the document language
// Example: {"language": "en"}
type SetLanguageRequest struct {
	Language string `json:"language"`
}

// SetDocTypeRequest represents the request body for switching the document type
// Example: {"docType": "price_list"}
type SetDocTypeRequest struct {
	DocType string `json:"docType"`
}
