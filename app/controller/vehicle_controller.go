package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"benbao-ev/models"
	"benbao-ev/repository"
)

// VehicleController handles HTTP requests for the vehicle catalog
type VehicleController struct {
	repository repository.VehicleRepositoryInterface
}

// NewVehicleController creates a new VehicleController
func NewVehicleController(repo repository.VehicleRepositoryInterface) *VehicleController {
	return &VehicleController{
		repository: repo,
	}
}

// Collection handles GET and POST /admin/vehicles
func (c *VehicleController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.list(w, r)
	case http.MethodPost:
		c.upsert(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Item handles GET, PUT and DELETE /admin/vehicles/{id}
func (c *VehicleController) Item(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/admin/vehicles/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "invalid vehicle id", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		c.get(w, r, id)
	case http.MethodPut:
		c.upsert(w, r)
	case http.MethodDelete:
		c.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (c *VehicleController) list(w http.ResponseWriter, r *http.Request) {
	vehicles, err := c.repository.List(r.Context())
	if err != nil {
		log.Printf("❌ ListVehicles: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list vehicles: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.VehicleListResponse{Vehicles: vehicles})
}

func (c *VehicleController) get(w http.ResponseWriter, r *http.Request, id string) {
	vehicle, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("❌ GetVehicle: %v", err)
		http.Error(w, fmt.Sprintf("Failed to get vehicle: %v", err), http.StatusInternalServerError)
		return
	}
	if vehicle == nil {
		http.Error(w, "vehicle not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}

func (c *VehicleController) upsert(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpsertVehicle: invalid request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := validateVehicle(&req); err != nil {
		log.Printf("❌ UpsertVehicle: validation failed: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	vehicle := models.Vehicle{
		ID:          strings.TrimSpace(req.ID),
		Model:       strings.TrimSpace(req.Model),
		Name:        strings.TrimSpace(req.Name),
		Battery:     req.Battery,
		Motor:       req.Motor,
		BrakeTire:   req.BrakeTire,
		SeatDash:    req.SeatDash,
		ControlFunc: req.ControlFunc,
		Additional:  req.Additional,
		Colors:      req.Colors,
		Price:       req.Price,
	}

	if err := c.repository.Upsert(r.Context(), &vehicle); err != nil {
		log.Printf("❌ UpsertVehicle: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save vehicle: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, vehicle)
}

func (c *VehicleController) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := c.repository.Delete(r.Context(), id); err != nil {
		log.Printf("❌ DeleteVehicle: %v", err)
		http.Error(w, fmt.Sprintf("Failed to delete vehicle: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// validateVehicle checks required fields before any write happens
func validateVehicle(req *models.UpsertVehicleRequest) error {
	if strings.TrimSpace(req.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(req.Model) == "" {
		return fmt.Errorf("model is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if req.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if dup := firstDuplicate(req.Battery); dup != "" {
		return fmt.Errorf("duplicate battery spec: %s", dup)
	}
	if dup := firstDuplicate(req.Colors); dup != "" {
		return fmt.Errorf("duplicate color: %s", dup)
	}
	return nil
}

// firstDuplicate returns the first repeated entry of an ordered list, or ""
func firstDuplicate(values []string) string {
	seen := make(map[string]bool, len(values))
	for _, v := range values {
		if seen[v] {
			return v
		}
		seen[v] = true
	}
	return ""
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}
