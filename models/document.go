package models

// Languages
const (
	LanguageZH = "zh" // default, catalog source language
	LanguageEN = "en"
)

// Document types
const (
	DocTypeQuotation = "quotation"
	DocTypePriceList = "price_list"
)

// ValidLanguage reports whether lang is a supported language
func ValidLanguage(lang string) bool {
	return lang == LanguageZH || lang == LanguageEN
}

// ValidDocType reports whether docType is a supported document type
func ValidDocType(docType string) bool {
	return docType == DocTypeQuotation || docType == DocTypePriceList
}

// Column keys of the rendered document, in display order
const (
	ColumnIndex     = "index"
	ColumnModelSpec = "model_spec"
	ColumnDetails   = "details"
	ColumnColors    = "colors" // price list only
	ColumnUnitPrice = "unit_price"
	ColumnQuantity  = "quantity"   // quotation only
	ColumnLineTotal = "line_total" // quotation only
)

// DocumentColumn is one header column of the rendered document
type DocumentColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"` // localized header text
}

// DocumentRow is one rendered line of the document. Display fields are
// localized strings; raw numeric values are carried alongside for the CSV
// path, which never uses formatted numbers.
type DocumentRow struct {
	Index        int      `json:"index"` // 1-based position
	Kind         string   `json:"kind"`
	ModelSpec    string   `json:"modelSpec"`    // model code or category label
	SubSpec      string   `json:"subSpec"`      // vehicle name or voltage/capacity
	Details      []string `json:"details"`      // sub-lines of the details cell
	Color        string   `json:"color"`        // quotation: chosen color; price list: full color list
	UnitPrice    int64    `json:"unitPrice"`    // raw
	Quantity     int      `json:"quantity"`     // raw
	LineTotal    int64    `json:"lineTotal"`    // raw
	UnitPriceFmt string   `json:"unitPriceFmt"` // grouped, with currency sign
	LineTotalFmt string   `json:"lineTotalFmt"`
}

// RenderedDocument is the display projection of a cart: a pure function of
// (cart snapshot, language, document type). It never mutates the cart.
type RenderedDocument struct {
	DocType       string           `json:"docType"`
	Language      string           `json:"language"`
	Columns       []DocumentColumn `json:"columns"`
	Rows          []DocumentRow    `json:"rows"`
	HasTotals     bool             `json:"hasTotals"` // quotation only
	GrandTotal    int64            `json:"grandTotal"`
	GrandTotalFmt string           `json:"grandTotalFmt"`

	// Header metadata for the printable page
	CompanyName string   `json:"companyName"`
	Title       string   `json:"title"`
	Reference   string   `json:"reference"`
	Date        string   `json:"date"`
	LogoDataURI string   `json:"logoDataUri,omitempty"`
	Terms       []string `json:"terms"`
	Signature   string   `json:"signature"`
}
