package app

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"benbao-ev/app/controller"
	"benbao-ev/app/router"
	"benbao-ev/db"
	"benbao-ev/repository"
	"benbao-ev/service"
)

// Initialize wires the application and returns the database handle for the
// caller to close on shutdown.
func Initialize() (*sql.DB, error) {
	// Initialize database connection
	database, err := db.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Base URL for the render view the PDF path navigates to
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		baseURL = "http://localhost:" + port
	}

	// Initialize repositories
	vehicleRepo := repository.NewVehicleRepository(database)
	accessoryRepo := repository.NewAccessoryRepository(database)
	assetRepo := repository.NewAssetRepository(database)

	// Initialize the translation collaborator. Without credentials the
	// server still runs; English documents then fall back to the
	// untranslated catalog text.
	var translator service.TranslatorInterface
	translateService, err := service.NewTranslateService()
	if err != nil {
		log.Printf("⚠️  Translation unavailable: %v", err)
		translator = service.NoopTranslator{}
	} else {
		translator = translateService
	}

	// Initialize services
	quoteService := service.NewQuoteService(vehicleRepo, accessoryRepo, translator)
	renderService := service.NewRenderService()
	pdfService := service.NewPDFService(baseURL)

	// Create controllers
	controllers := &router.Controllers{
		Vehicle:   controller.NewVehicleController(vehicleRepo),
		Accessory: controller.NewAccessoryController(accessoryRepo),
		Quote:     controller.NewQuoteController(quoteService, renderService, pdfService, assetRepo),
		Branding:  controller.NewBrandingController(assetRepo),
	}

	// Setup routes using standard http router
	router.SetupRoutes(controllers)

	return database, nil
}
