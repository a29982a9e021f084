package dto

import "github.com/shopspring/decimal"

// UpdateCompanyRequest PUT /api/company gövdesi. Sıra numarası buradan
// değiştirilemez; yalnızca kesinleştirme tüketir.
type UpdateCompanyRequest struct {
	Name           string          `json:"name"`
	VKN            string          `json:"vkn"`
	TaxOffice      string          `json:"tax_office"`
	Address        string          `json:"address"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	InvoiceSeries  string          `json:"invoice_series"`
	CurrencyCode   string          `json:"currency_code"`
	DefaultTaxRate decimal.Decimal `json:"default_tax_rate"`
}

// CompanyResponse firma profili yanıtı.
type CompanyResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	VKN            string          `json:"vkn"`
	TaxOffice      string          `json:"tax_office"`
	Address        string          `json:"address"`
	Email          string          `json:"email,omitempty"`
	Phone          string          `json:"phone,omitempty"`
	InvoiceSeries  string          `json:"invoice_series"`
	NextSequence   int64           `json:"next_sequence"`
	CurrencyCode   string          `json:"currency_code"`
	DefaultTaxRate decimal.Decimal `json:"default_tax_rate"`
}
