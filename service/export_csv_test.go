package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"benbao-ev/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixture(t *testing.T, docType string) [][]string {
	t.Helper()
	s := NewRenderService()
	lines := []models.CartLine{
		{Kind: models.LineKindVehicle, Vehicle: testVehicle("v1", 4580, "红色", "黑色"), SelectedColor: "红色", Quantity: 3},
		{Kind: models.LineKindAccessory, Accessory: testAccessory("a1", 500), Quantity: 2},
	}
	doc := s.BuildDocument(lines, models.LanguageEN, docType, "")

	data, err := ExportCSV(doc)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}), "missing UTF-8 BOM")

	records, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportCSVQuotation(t *testing.T) {
	records := exportFixture(t, models.DocTypeQuotation)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"#", "Model/Spec", "Details", "Price", "Qty", "Total"}, records[0])

	vehicle := records[1]
	assert.Equal(t, "1", vehicle[0])
	assert.Equal(t, "BB-v1 奔宝 v1", vehicle[1])
	assert.Contains(t, vehicle[2], "Motor: 1200W")
	assert.Contains(t, vehicle[2], "Color: 红色")
	// Numeric cells are raw values, no currency symbol or separators
	assert.Equal(t, "4580", vehicle[3])
	assert.Equal(t, "3", vehicle[4])
	assert.Equal(t, "13740", vehicle[5])

	accessory := records[2]
	assert.Equal(t, "Battery 60V 20Ah", accessory[1])
	assert.Equal(t, "Original Accessory", accessory[2])
	assert.NotContains(t, accessory[2], "Color:")
	assert.Equal(t, "500", accessory[3])
	assert.Equal(t, "2", accessory[4])
	assert.Equal(t, "1000", accessory[5])
}

func TestExportCSVPriceList(t *testing.T) {
	records := exportFixture(t, models.DocTypePriceList)
	require.Len(t, records, 3)

	// No quantity or line-total columns; colors column carries the full range
	assert.Equal(t, []string{"#", "Model/Spec", "Details", "Colors", "Price"}, records[0])

	vehicle := records[1]
	assert.Equal(t, "红色, 黑色", vehicle[3])
	assert.Equal(t, "4580", vehicle[4])
	assert.NotContains(t, vehicle[2], "Color:")

	accessory := records[2]
	assert.Equal(t, "-", accessory[3])
}

func TestExportCSVEmptyDocument(t *testing.T) {
	s := NewRenderService()
	doc := s.BuildDocument(nil, models.LanguageZH, models.DocTypeQuotation, "")

	data, err := ExportCSV(doc)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, []string{"#", "型号/规格", "配置详情", "单价", "数量", "总计"}, records[0])
}

func TestCSVFilename(t *testing.T) {
	name := CSVFilename(models.DocTypePriceList, models.LanguageEN)
	assert.True(t, strings.HasPrefix(name, "benbao_price_list_en_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}

func TestPDFFilename(t *testing.T) {
	assert.True(t, strings.HasPrefix(PDFFilename(models.DocTypeQuotation), "Benbao_Quote_"))
	assert.True(t, strings.HasPrefix(PDFFilename(models.DocTypePriceList), "Benbao_PriceList_"))
}
