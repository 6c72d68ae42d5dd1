package service

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"time"

	"benbao-ev/models"
	"benbao-ev/utils"
)

// accessoryDetailPlaceholder fills the details cell of accessory rows; there
// is no per-item variant detail for accessories yet.
const accessoryDetailPlaceholder = "Original Accessory"

// RenderService turns a cart display copy into the document projection and
// the printable HTML page the PDF path rasterizes.
type RenderService struct {
	templatePath string
}

// NewRenderService creates a new RenderService
func NewRenderService() *RenderService {
	return &RenderService{
		templatePath: filepath.Join("templates", "quote.html"),
	}
}

// BuildDocument computes the display projection of the given lines. It is a
// pure function of (lines, language, docType, logo): it never mutates the
// cart and can be called any number of times with the same result.
func (s *RenderService) BuildDocument(lines []models.CartLine, language, docType, logoDataURI string) models.RenderedDocument {
	doc := models.RenderedDocument{
		DocType:     docType,
		Language:    language,
		Columns:     documentColumns(language, docType),
		HasTotals:   docType == models.DocTypeQuotation,
		CompanyName: utils.CompanyName(language),
		Title:       utils.DocTitle(language, docType),
		Reference:   documentReference(docType),
		Date:        time.Now().Format("2006-01-02"),
		LogoDataURI: logoDataURI,
		Terms:       utils.Terms(language),
		Signature:   utils.Signature(language),
	}

	for i, line := range lines {
		doc.Rows = append(doc.Rows, buildRow(i+1, line, docType))
	}

	if doc.HasTotals {
		doc.GrandTotal = LinesTotal(lines)
		doc.GrandTotalFmt = utils.FormatCNY(doc.GrandTotal)
	}

	return doc
}

func documentColumns(language, docType string) []models.DocumentColumn {
	keys := []string{models.ColumnIndex, models.ColumnModelSpec, models.ColumnDetails}
	if docType == models.DocTypePriceList {
		keys = append(keys, models.ColumnColors)
	}
	keys = append(keys, models.ColumnUnitPrice)
	if docType == models.DocTypeQuotation {
		keys = append(keys, models.ColumnQuantity, models.ColumnLineTotal)
	}

	columns := make([]models.DocumentColumn, len(keys))
	for i, key := range keys {
		columns[i] = models.DocumentColumn{Key: key, Label: utils.ColumnLabel(language, key)}
	}
	return columns
}

func buildRow(index int, line models.CartLine, docType string) models.DocumentRow {
	row := models.DocumentRow{
		Index:        index,
		Kind:         line.Kind,
		UnitPrice:    line.UnitPrice(),
		Quantity:     line.Quantity,
		LineTotal:    line.LineTotal(),
		UnitPriceFmt: utils.FormatCNY(line.UnitPrice()),
		LineTotalFmt: utils.FormatCNY(line.LineTotal()),
	}

	switch line.Kind {
	case models.LineKindVehicle:
		v := line.Vehicle
		row.ModelSpec = v.Model
		row.SubSpec = v.Name
		row.Details = []string{
			"Motor: " + v.Motor,
			"Brake/Tire: " + v.BrakeTire,
			"Batt Support: " + strings.Join(v.Battery, ", "),
		}
		if docType == models.DocTypePriceList {
			// Price lists show the full color range instead of one choice
			row.Color = strings.Join(v.Colors, ", ")
		} else {
			row.Color = line.SelectedColor
		}
	case models.LineKindAccessory:
		a := line.Accessory
		row.ModelSpec = utils.AccessoryCategoryLabel(a.Category)
		row.SubSpec = a.Voltage + " " + a.Capacity
		row.Details = []string{accessoryDetailPlaceholder}
		if docType == models.DocTypePriceList {
			row.Color = "-"
		}
	}

	return row
}

// documentReference builds the short reference number shown in the header,
// "Q-" or "P-" plus the trailing digits of the current unix milliseconds.
func documentReference(docType string) string {
	prefix := "Q"
	if docType == models.DocTypePriceList {
		prefix = "P"
	}
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	return prefix + "-" + millis[len(millis)-6:]
}

// printPageData is the template payload for the printable A4 page
type printPageData struct {
	Doc         models.RenderedDocument
	Translating bool
	AutoPrint   bool // fallback path: open the browser print dialog on load
	ColumnCount int
}

// RenderHTML renders the printable A4 page for the given projection. When
// translating is true the table is replaced with a loading indicator (the
// page is not exportable in that state). When autoPrint is true the page
// triggers window.print() on load, which is the fallback when PDF assembly
// fails.
func (s *RenderService) RenderHTML(doc models.RenderedDocument, translating, autoPrint bool) (string, error) {
	tmpl, err := template.ParseFiles(s.templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	data := printPageData{
		Doc:         doc,
		Translating: translating,
		AutoPrint:   autoPrint,
		ColumnCount: len(doc.Columns),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
