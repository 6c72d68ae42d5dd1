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

// AccessoryController handles HTTP requests for the accessory catalog
type AccessoryController struct {
	repository repository.AccessoryRepositoryInterface
}

// NewAccessoryController creates a new AccessoryController
func NewAccessoryController(repo repository.AccessoryRepositoryInterface) *AccessoryController {
	return &AccessoryController{
		repository: repo,
	}
}

// Collection handles GET and POST /admin/accessories
// GET accepts an optional ?category=battery|charger filter
func (c *AccessoryController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.list(w, r)
	case http.MethodPost:
		c.upsert(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Item handles GET, PUT and DELETE /admin/accessories/{id}
func (c *AccessoryController) Item(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/admin/accessories/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "invalid accessory id", http.StatusBadRequest)
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

func (c *AccessoryController) list(w http.ResponseWriter, r *http.Request) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category != "" && !models.ValidAccessoryCategory(category) {
		http.Error(w, "Invalid category. Valid categories: battery, charger", http.StatusBadRequest)
		return
	}

	accessories, err := c.repository.List(r.Context(), category)
	if err != nil {
		log.Printf("❌ ListAccessories: %v", err)
		http.Error(w, fmt.Sprintf("Failed to list accessories: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, models.AccessoryListResponse{Accessories: accessories})
}

func (c *AccessoryController) get(w http.ResponseWriter, r *http.Request, id string) {
	accessory, err := c.repository.GetByID(r.Context(), id)
	if err != nil {
		log.Printf("❌ GetAccessory: %v", err)
		http.Error(w, fmt.Sprintf("Failed to get accessory: %v", err), http.StatusInternalServerError)
		return
	}
	if accessory == nil {
		http.Error(w, "accessory not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, accessory)
}

func (c *AccessoryController) upsert(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertAccessoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ UpsertAccessory: invalid request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.ID) == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}
	if !models.ValidAccessoryCategory(req.Category) {
		http.Error(w, "Invalid category. Valid categories: battery, charger", http.StatusBadRequest)
		return
	}
	if req.Price < 0 {
		http.Error(w, "price must not be negative", http.StatusBadRequest)
		return
	}

	accessory := models.Accessory{
		ID:       strings.TrimSpace(req.ID),
		Category: req.Category,
		Voltage:  strings.TrimSpace(req.Voltage),
		Capacity: strings.TrimSpace(req.Capacity),
		Price:    req.Price,
	}

	if err := c.repository.Upsert(r.Context(), &accessory); err != nil {
		log.Printf("❌ UpsertAccessory: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save accessory: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, accessory)
}

func (c *AccessoryController) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := c.repository.Delete(r.Context(), id); err != nil {
		log.Printf("❌ DeleteAccessory: %v", err)
		http.Error(w, fmt.Sprintf("Failed to delete accessory: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
