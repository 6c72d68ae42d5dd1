package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"benbao-ev/models"
)

// utf8BOM prefixes the CSV so spreadsheet applications pick up the encoding
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportCSV serializes a rendered document: one header row from the
// projection's column set, one data row per line item with raw (unformatted)
// numeric values.
func ExportCSV(doc models.RenderedDocument) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)

	header := make([]string, len(doc.Columns))
	for i, col := range doc.Columns {
		header[i] = col.Label
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range doc.Rows {
		record := make([]string, 0, len(doc.Columns))
		for _, col := range doc.Columns {
			record = append(record, csvCell(row, col.Key, doc.DocType))
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv row %d: %w", row.Index, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func csvCell(row models.DocumentRow, key, docType string) string {
	switch key {
	case models.ColumnIndex:
		return strconv.Itoa(row.Index)
	case models.ColumnModelSpec:
		return strings.TrimSpace(row.ModelSpec + " " + row.SubSpec)
	case models.ColumnDetails:
		details := strings.Join(row.Details, "; ")
		// Quotations carry the chosen color with the details; price lists
		// have their own colors column.
		if docType == models.DocTypeQuotation && row.Kind == models.LineKindVehicle {
			details += "; Color: " + row.Color
		}
		return details
	case models.ColumnColors:
		return row.Color
	case models.ColumnUnitPrice:
		return strconv.FormatInt(row.UnitPrice, 10)
	case models.ColumnQuantity:
		return strconv.Itoa(row.Quantity)
	case models.ColumnLineTotal:
		return strconv.FormatInt(row.LineTotal, 10)
	}
	return ""
}

// CSVFilename builds the download filename, encoding document type, language
// and a timestamp for uniqueness.
func CSVFilename(docType, language string) string {
	return fmt.Sprintf("benbao_%s_%s_%d.csv", docType, language, time.Now().Unix())
}

// PDFFilename builds the download filename for the PDF path
func PDFFilename(docType string) string {
	kind := "Quote"
	if docType == models.DocTypePriceList {
		kind = "PriceList"
	}
	return fmt.Sprintf("Benbao_%s_%d.pdf", kind, time.Now().Unix())
}
