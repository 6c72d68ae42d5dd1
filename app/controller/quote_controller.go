package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"benbao-ev/models"
	"benbao-ev/repository"
	"benbao-ev/service"
)

// QuoteController handles HTTP requests for quote-builder sessions: cart
// mutations, language/doc-type switches, the printable render view and the
// CSV/PDF export paths.
type QuoteController struct {
	quoteService  *service.QuoteService
	renderService *service.RenderService
	pdfService    *service.PDFService
	assetRepo     repository.AssetRepositoryInterface
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(
	quoteService *service.QuoteService,
	renderService *service.RenderService,
	pdfService *service.PDFService,
	assetRepo repository.AssetRepositoryInterface,
) *QuoteController {
	return &QuoteController{
		quoteService:  quoteService,
		renderService: renderService,
		pdfService:    pdfService,
		assetRepo:     assetRepo,
	}
}

// Collection handles POST (create session) and GET (list sessions) /admin/quotes
func (c *QuoteController) Collection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		state := c.quoteService.CreateSession()
		writeJSON(w, http.StatusCreated, state)
	case http.MethodGet:
		writeJSON(w, http.StatusOK, models.QuoteListResponse{Quotes: c.quoteService.ListSessions()})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Session routes everything under /admin/quotes/{id}
func (c *QuoteController) Session(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/admin/quotes/")
	if path == "" {
		http.Error(w, "quote session id is required", http.StatusBadRequest)
		return
	}

	parts := strings.Split(path, "/")
	sessionID := parts[0]
	rest := parts[1:]

	switch {
	case len(rest) == 0:
		c.sessionRoot(w, r, sessionID)
	case rest[0] == "items":
		c.items(w, r, sessionID, rest[1:])
	case rest[0] == "language" && len(rest) == 1:
		c.setLanguage(w, r, sessionID)
	case rest[0] == "doc-type" && len(rest) == 1:
		c.setDocType(w, r, sessionID)
	case rest[0] == "render" && len(rest) == 1:
		c.render(w, r, sessionID)
	case rest[0] == "export" && len(rest) == 1:
		c.export(w, r, sessionID)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (c *QuoteController) sessionRoot(w http.ResponseWriter, r *http.Request, sessionID string) {
	switch r.Method {
	case http.MethodGet:
		state, err := c.quoteService.State(sessionID)
		if err != nil {
			c.writeServiceError(w, "GetQuote", err)
			return
		}
		writeJSON(w, http.StatusOK, state)
	case http.MethodDelete:
		c.quoteService.DeleteSession(sessionID)
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// items handles the cart mutations:
//
//	POST   /admin/quotes/{id}/items/vehicle    {"vehicleId": "...", "color": "..."}
//	POST   /admin/quotes/{id}/items/accessory  {"accessoryId": "..."}
//	PUT    /admin/quotes/{id}/items/{index}    {"quantity": 3}
//	DELETE /admin/quotes/{id}/items/{index}
func (c *QuoteController) items(w http.ResponseWriter, r *http.Request, sessionID string, rest []string) {
	if len(rest) != 1 {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch rest[0] {
	case "vehicle":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req models.AddVehicleLineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		state, err := c.quoteService.AddVehicle(r.Context(), sessionID, req.VehicleID, req.Color)
		if err != nil {
			c.writeServiceError(w, "AddVehicle", err)
			return
		}
		writeJSON(w, http.StatusOK, state)

	case "accessory":
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req models.AddAccessoryLineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		state, err := c.quoteService.AddAccessory(r.Context(), sessionID, req.AccessoryID)
		if err != nil {
			c.writeServiceError(w, "AddAccessory", err)
			return
		}
		writeJSON(w, http.StatusOK, state)

	default:
		index, err := strconv.Atoi(rest[0])
		if err != nil {
			http.Error(w, "invalid line index", http.StatusBadRequest)
			return
		}

		switch r.Method {
		case http.MethodPut, http.MethodPatch:
			var req models.SetQuantityRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, "invalid request body", http.StatusBadRequest)
				return
			}
			state, err := c.quoteService.SetQuantity(sessionID, index, req.Quantity)
			if err != nil {
				c.writeServiceError(w, "SetQuantity", err)
				return
			}
			writeJSON(w, http.StatusOK, state)
		case http.MethodDelete:
			state, err := c.quoteService.RemoveLine(sessionID, index)
			if err != nil {
				c.writeServiceError(w, "RemoveLine", err)
				return
			}
			writeJSON(w, http.StatusOK, state)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (c *QuoteController) setLanguage(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SetLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !models.ValidLanguage(req.Language) {
		http.Error(w, "Invalid language. Valid languages: zh, en", http.StatusBadRequest)
		return
	}

	state, err := c.quoteService.SetLanguage(sessionID, req.Language)
	if err != nil {
		c.writeServiceError(w, "SetLanguage", err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (c *QuoteController) setDocType(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SetDocTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if !models.ValidDocType(req.DocType) {
		http.Error(w, "Invalid docType. Valid types: quotation, price_list", http.StatusBadRequest)
		return
	}

	state, err := c.quoteService.SetDocType(sessionID, req.DocType)
	if err != nil {
		c.writeServiceError(w, "SetDocType", err)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

// render serves the printable A4 page. While a translation is in flight the
// page shows a loading indicator in place of the table.
func (c *QuoteController) render(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	html, _, err := c.renderPage(r, sessionID, false)
	if err != nil {
		c.writeServiceError(w, "RenderQuote", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// export handles GET /admin/quotes/{id}/export?format=csv|pdf
func (c *QuoteController) export(w http.ResponseWriter, r *http.Request, sessionID string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format != "csv" && format != "pdf" {
		http.Error(w, "format parameter is required. Valid formats: csv, pdf", http.StatusBadRequest)
		return
	}

	lines, language, docType, translating, err := c.quoteService.DisplayLines(sessionID)
	if err != nil {
		c.writeServiceError(w, "Export", err)
		return
	}
	if translating {
		log.Printf("⚠️  Export: translation in flight for session %s", sessionID)
		http.Error(w, service.ErrTranslationInFlight.Error(), http.StatusConflict)
		return
	}
	if len(lines) == 0 {
		http.Error(w, service.ErrEmptyCart.Error(), http.StatusUnprocessableEntity)
		return
	}

	switch format {
	case "csv":
		c.exportCSV(w, r, lines, language, docType)
	case "pdf":
		c.exportPDF(w, r, sessionID, docType)
	}
}

func (c *QuoteController) exportCSV(w http.ResponseWriter, r *http.Request, lines []models.CartLine, language, docType string) {
	doc := c.renderService.BuildDocument(lines, language, docType, "")
	data, err := service.ExportCSV(doc)
	if err != nil {
		log.Printf("❌ ExportCSV: %v", err)
		http.Error(w, fmt.Sprintf("Failed to export CSV: %v", err), http.StatusInternalServerError)
		return
	}

	filename := service.CSVFilename(docType, language)
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(data)
	log.Printf("✓ CSV exported: %s (%d bytes)", filename, len(data))
}

// exportPDF rasterizes the render view via headless Chrome. On any failure
// the response degrades to the printable HTML page with an auto print
// trigger, so the user still gets output.
func (c *QuoteController) exportPDF(w http.ResponseWriter, r *http.Request, sessionID, docType string) {
	pdfData, err := c.pdfService.GeneratePDF(r.Context(), sessionID)
	if err != nil {
		log.Printf("⚠️  ExportPDF failed, falling back to browser print: %v", err)

		html, _, renderErr := c.renderPage(r, sessionID, true)
		if renderErr != nil {
			http.Error(w, fmt.Sprintf("Failed to export PDF: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Export-Fallback", "print")
		w.Write([]byte(html))
		return
	}

	filename := service.PDFFilename(docType)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(pdfData)
	log.Printf("✓ PDF exported: %s (%d bytes)", filename, len(pdfData))
}

// renderPage builds the projection for a session and renders the printable
// page, loading the stored logo if one exists.
func (c *QuoteController) renderPage(r *http.Request, sessionID string, autoPrint bool) (string, bool, error) {
	lines, language, docType, translating, err := c.quoteService.DisplayLines(sessionID)
	if err != nil {
		return "", false, err
	}

	logo, err := c.assetRepo.GetLogo(r.Context())
	if err != nil {
		// A missing or unreadable logo never blocks the document
		log.Printf("⚠️  RenderQuote: could not load logo: %v", err)
		logo = ""
	}

	doc := c.renderService.BuildDocument(lines, language, docType, logo)
	html, err := c.renderService.RenderHTML(doc, translating, autoPrint)
	if err != nil {
		return "", false, err
	}
	return html, translating, nil
}

func (c *QuoteController) writeServiceError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, service.ErrSessionNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	log.Printf("❌ %s: %v", op, err)
	http.Error(w, fmt.Sprintf("%s failed: %v", op, err), http.StatusInternalServerError)
}
