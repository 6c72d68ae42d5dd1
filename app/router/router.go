package router

import (
	"net/http"

	"benbao-ev/app/controller"
)

type Controllers struct {
	Vehicle   *controller.VehicleController
	Accessory *controller.AccessoryController
	Quote     *controller.QuoteController
	Branding  *controller.BrandingController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Vehicle catalog routes
	http.HandleFunc("/admin/vehicles", controllers.Vehicle.Collection)
	http.HandleFunc("/admin/vehicles/", controllers.Vehicle.Item)

	// Accessory catalog routes
	http.HandleFunc("/admin/accessories", controllers.Accessory.Collection)
	http.HandleFunc("/admin/accessories/", controllers.Accessory.Item)

	// Quote session routes - create/list, then everything under /:id
	// (items, language, doc-type, render, export)
	http.HandleFunc("/admin/quotes", controllers.Quote.Collection)
	http.HandleFunc("/admin/quotes/", controllers.Quote.Session)

	// Branding routes
	http.HandleFunc("/admin/branding/logo", controllers.Branding.Logo)
}
