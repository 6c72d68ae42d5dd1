package utils

import "benbao-ev/models"

// Bilingual labels for document headers and table columns. The catalog is
// authored in Chinese; the English side is fixed vocabulary, not machine
// translated.

var columnLabels = map[string]map[string]string{
	models.LanguageZH: {
		models.ColumnIndex:     "#",
		models.ColumnModelSpec: "型号/规格",
		models.ColumnDetails:   "配置详情",
		models.ColumnColors:    "可选颜色",
		models.ColumnUnitPrice: "单价",
		models.ColumnQuantity:  "数量",
		models.ColumnLineTotal: "总计",
	},
	models.LanguageEN: {
		models.ColumnIndex:     "#",
		models.ColumnModelSpec: "Model/Spec",
		models.ColumnDetails:   "Details",
		models.ColumnColors:    "Colors",
		models.ColumnUnitPrice: "Price",
		models.ColumnQuantity:  "Qty",
		models.ColumnLineTotal: "Total",
	},
}

var docTitles = map[string]map[string]string{
	models.LanguageZH: {
		models.DocTypeQuotation: "报价单",
		models.DocTypePriceList: "价格表",
	},
	models.LanguageEN: {
		models.DocTypeQuotation: "QUOTATION",
		models.DocTypePriceList: "PRICE LIST",
	},
}

var companyNames = map[string]string{
	models.LanguageZH: "浙江奔宝车业有限公司",
	models.LanguageEN: "ZHEJIANG BENBAO VEHICLE CO., LTD.",
}

var accessoryCategoryLabels = map[string]string{
	models.AccessoryCategoryBattery: "Battery",
	models.AccessoryCategoryCharger: "Charger",
}

var termsLines = map[string][]string{
	models.LanguageZH: {
		"所有价格含税，包含标准包装。",
		"报价有效期30天。",
		"生产周期视订单量而定。",
		"最终解释权归奔宝车业所有。",
	},
	models.LanguageEN: {
		"Prices include tax and standard packaging.",
		"Validity of this quotation is 30 days.",
		"Production lead time depends on order volume.",
		"Benbao Vehicle reserves the right of final interpretation.",
	},
}

var signatureLines = map[string]string{
	models.LanguageZH: "授权签字: 浙江奔宝车业有限公司",
	models.LanguageEN: "Authorized Signature: Zhejiang Benbao Vehicle Co., Ltd.",
}

// ColumnLabel returns the localized header text for a column key
func ColumnLabel(lang, key string) string {
	if labels, exists := columnLabels[lang]; exists {
		if label, ok := labels[key]; ok {
			return label
		}
	}
	return key
}

// DocTitle returns the localized document title for a document type
func DocTitle(lang, docType string) string {
	if titles, exists := docTitles[lang]; exists {
		if title, ok := titles[docType]; ok {
			return title
		}
	}
	return docType
}

// CompanyName returns the localized company name
func CompanyName(lang string) string {
	if name, exists := companyNames[lang]; exists {
		return name
	}
	return companyNames[models.LanguageZH]
}

// AccessoryCategoryLabel returns the display label for an accessory category
func AccessoryCategoryLabel(category string) string {
	if label, exists := accessoryCategoryLabels[category]; exists {
		return label
	}
	return category
}

// Terms returns the localized terms and conditions lines
func Terms(lang string) []string {
	if lines, exists := termsLines[lang]; exists {
		return lines
	}
	return termsLines[models.LanguageZH]
}

// Signature returns the localized signature block caption
func Signature(lang string) string {
	if line, exists := signatureLines[lang]; exists {
		return line
	}
	return signatureLines[models.LanguageZH]
}
