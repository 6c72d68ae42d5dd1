package service

import (
	"strings"
	"testing"

	"benbao-ev/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func columnKeys(columns []models.DocumentColumn) []string {
	keys := make([]string, len(columns))
	for i, c := range columns {
		keys[i] = c.Key
	}
	return keys
}

func TestBuildDocumentQuotationColumns(t *testing.T) {
	s := NewRenderService()
	doc := s.BuildDocument(nil, models.LanguageZH, models.DocTypeQuotation, "")

	assert.Equal(t, []string{
		models.ColumnIndex,
		models.ColumnModelSpec,
		models.ColumnDetails,
		models.ColumnUnitPrice,
		models.ColumnQuantity,
		models.ColumnLineTotal,
	}, columnKeys(doc.Columns))
	assert.True(t, doc.HasTotals)
	assert.Equal(t, "报价单", doc.Title)
	assert.True(t, strings.HasPrefix(doc.Reference, "Q-"))
}

func TestBuildDocumentPriceListColumns(t *testing.T) {
	s := NewRenderService()
	doc := s.BuildDocument(nil, models.LanguageEN, models.DocTypePriceList, "")

	assert.Equal(t, []string{
		models.ColumnIndex,
		models.ColumnModelSpec,
		models.ColumnDetails,
		models.ColumnColors,
		models.ColumnUnitPrice,
	}, columnKeys(doc.Columns))
	assert.False(t, doc.HasTotals)
	assert.Zero(t, doc.GrandTotal)
	assert.Equal(t, "PRICE LIST", doc.Title)
	assert.True(t, strings.HasPrefix(doc.Reference, "P-"))
}

func TestBuildDocumentVehicleRows(t *testing.T) {
	s := NewRenderService()
	v := testVehicle("v1", 4580, "红色", "黑色")
	lines := []models.CartLine{
		{Kind: models.LineKindVehicle, Vehicle: v, SelectedColor: "黑色", Quantity: 3},
	}

	doc := s.BuildDocument(lines, models.LanguageZH, models.DocTypeQuotation, "")
	require.Len(t, doc.Rows, 1)
	row := doc.Rows[0]

	assert.Equal(t, 1, row.Index)
	assert.Equal(t, "BB-v1", row.ModelSpec)
	assert.Equal(t, "奔宝 v1", row.SubSpec)
	assert.Equal(t, []string{
		"Motor: 1200W",
		"Brake/Tire: ",
		"Batt Support: 60V 20Ah, 72V 32Ah",
	}, row.Details)
	assert.Equal(t, "黑色", row.Color)
	assert.Equal(t, int64(4580), row.UnitPrice)
	assert.Equal(t, 3, row.Quantity)
	assert.Equal(t, int64(13740), row.LineTotal)
	assert.Equal(t, "¥4,580", row.UnitPriceFmt)
	assert.Equal(t, "¥13,740", row.LineTotalFmt)
	assert.Equal(t, int64(13740), doc.GrandTotal)
}

func TestBuildDocumentPriceListShowsColorRange(t *testing.T) {
	s := NewRenderService()
	v := testVehicle("v1", 4580, "红色", "黑色", "白色")
	lines := []models.CartLine{
		{Kind: models.LineKindVehicle, Vehicle: v, SelectedColor: "红色", Quantity: 1},
	}

	doc := s.BuildDocument(lines, models.LanguageZH, models.DocTypePriceList, "")
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "红色, 黑色, 白色", doc.Rows[0].Color)
}

func TestBuildDocumentAccessoryRows(t *testing.T) {
	s := NewRenderService()
	a := testAccessory("a1", 500)
	lines := []models.CartLine{
		{Kind: models.LineKindAccessory, Accessory: a, Quantity: 2},
	}

	doc := s.BuildDocument(lines, models.LanguageZH, models.DocTypePriceList, "")
	require.Len(t, doc.Rows, 1)
	row := doc.Rows[0]

	assert.Equal(t, "Battery", row.ModelSpec)
	assert.Equal(t, "60V 20Ah", row.SubSpec)
	assert.Equal(t, []string{"Original Accessory"}, row.Details)
	assert.Equal(t, "-", row.Color)
}

func TestBuildDocumentGrandTotal(t *testing.T) {
	s := NewRenderService()
	lines := []models.CartLine{
		{Kind: models.LineKindVehicle, Vehicle: testVehicle("v1", 10000, "红色"), SelectedColor: "红色", Quantity: 2},
		{Kind: models.LineKindAccessory, Accessory: testAccessory("a1", 500), Quantity: 1},
	}

	doc := s.BuildDocument(lines, models.LanguageEN, models.DocTypeQuotation, "")
	assert.Equal(t, int64(20500), doc.GrandTotal)
	assert.Equal(t, "¥20,500", doc.GrandTotalFmt)
}

func TestBuildDocumentDoesNotMutateLines(t *testing.T) {
	s := NewRenderService()
	v := testVehicle("v1", 4580, "红色")
	lines := []models.CartLine{
		{Kind: models.LineKindVehicle, Vehicle: v, SelectedColor: "红色", Quantity: 2},
	}

	first := s.BuildDocument(lines, models.LanguageZH, models.DocTypeQuotation, "")
	_ = s.BuildDocument(lines, models.LanguageZH, models.DocTypePriceList, "")
	second := s.BuildDocument(lines, models.LanguageZH, models.DocTypeQuotation, "")

	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, first.GrandTotal, second.GrandTotal)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "红色", lines[0].SelectedColor)
}

func TestRenderHTMLIncludesHeaderAndRows(t *testing.T) {
	s := &RenderService{templatePath: "../templates/quote.html"}
	v := testVehicle("v1", 4580, "红色")
	lines := []models.CartLine{
		{Kind: models.LineKindVehicle, Vehicle: v, SelectedColor: "红色", Quantity: 1},
	}
	doc := s.BuildDocument(lines, models.LanguageZH, models.DocTypeQuotation, "")

	html, err := s.RenderHTML(doc, false, false)
	require.NoError(t, err)
	assert.Contains(t, html, "浙江奔宝车业有限公司")
	assert.Contains(t, html, "报价单")
	assert.Contains(t, html, "BB-v1")
	assert.Contains(t, html, "¥4,580")
	assert.NotContains(t, html, "window.print()")
}

func TestRenderHTMLAutoPrint(t *testing.T) {
	s := &RenderService{templatePath: "../templates/quote.html"}
	doc := s.BuildDocument(nil, models.LanguageEN, models.DocTypeQuotation, "")

	html, err := s.RenderHTML(doc, false, true)
	require.NoError(t, err)
	assert.Contains(t, html, "window.print()")
}
