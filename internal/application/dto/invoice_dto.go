package dto

import (
	"github.com/shopspring/decimal"

	"github.com/kullanici/fatura-pro/internal/domain/entity"
)

// InvoiceLineInput istekte gelen fatura satırı. Türetilmiş alanlar istekte
// taşınmaz; her kayıtta hesaplayıcı tarafından yeniden üretilir.
type InvoiceLineInput struct {
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
}

// SaveInvoiceRequest POST/PUT /api/invoices gövdesi (taslak kaydı).
// CustomerID kataloğa işaret eder; kayıtta müşterinin kopyası faturaya alınır.
type SaveInvoiceRequest struct {
	CustomerID      string             `json:"customer_id"`
	Date            string             `json:"date,omitempty"` // YYYY-MM-DD; boşsa bugün
	Lines           []InvoiceLineInput `json:"lines"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
	Note            string             `json:"note,omitempty"`
}

// PreviewInvoiceRequest POST /api/invoices/preview gövdesi: kaydedilmemiş
// düzenleme için toplamların anlık hesabı (UI her alan değişikliğinde çağırır).
type PreviewInvoiceRequest struct {
	Lines           []InvoiceLineInput `json:"lines"`
	DiscountPercent decimal.Decimal    `json:"discount_percent"`
}

// InvoiceLineResponse türetilmiş alanları doldurulmuş satır.
type InvoiceLineResponse struct {
	ID              string          `json:"id,omitempty"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	Net             decimal.Decimal `json:"net"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
}

// PartyResponse faturadaki dondurulmuş taraf kopyası.
type PartyResponse struct {
	Kind      string `json:"kind,omitempty"`
	Name      string `json:"name"`
	TaxID     string `json:"tax_id"`
	TaxOffice string `json:"tax_office,omitempty"`
	Address   string `json:"address"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// TotalsResponse dört belge toplamı ve sunuma hazır genel toplam.
type TotalsResponse struct {
	Subtotal            decimal.Decimal `json:"subtotal"`
	DiscountTotal       decimal.Decimal `json:"discount_total"`
	TaxTotal            decimal.Decimal `json:"tax_total"`
	GrandTotal          decimal.Decimal `json:"grand_total"`
	GrandTotalFormatted string          `json:"grand_total_formatted"` // örn. "₺1.100,00"
}

// PreviewInvoiceResponse anlık hesap yanıtı.
type PreviewInvoiceResponse struct {
	Lines  []InvoiceLineResponse `json:"lines"`
	Totals TotalsResponse        `json:"totals"`
}

// InvoiceResponse fatura yanıtı.
type InvoiceResponse struct {
	ID              string                `json:"id"`
	Number          string                `json:"number,omitempty"`
	Date            string                `json:"date"`
	Seller          PartyResponse         `json:"seller"`
	Buyer           PartyResponse         `json:"buyer"`
	Lines           []InvoiceLineResponse `json:"lines"`
	DiscountPercent decimal.Decimal       `json:"discount_percent"`
	Totals          TotalsResponse        `json:"totals"`
	Note            string                `json:"note,omitempty"`
	Status          string                `json:"status"`
}

// InvoiceListResponse sayfalı fatura listesi.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// LinesToEntities istek satırlarını varlıklara çevirir; sıra korunur.
func LinesToEntities(in []InvoiceLineInput) []entity.InvoiceLine {
	out := make([]entity.InvoiceLine, 0, len(in))
	for _, l := range in {
		out = append(out, entity.InvoiceLine{
			Name:            l.Name,
			Description:     l.Description,
			Quantity:        l.Quantity,
			Unit:            l.Unit,
			UnitPrice:       l.UnitPrice,
			DiscountPercent: ClampPercent(l.DiscountPercent),
			TaxRate:         l.TaxRate,
		})
	}
	return out
}

// PartyFromEntity taraf kopyasını yanıt biçimine çevirir.
func PartyFromEntity(p entity.Party) PartyResponse {
	return PartyResponse{
		Kind:      p.Kind,
		Name:      p.Name,
		TaxID:     p.TaxID,
		TaxOffice: p.TaxOffice,
		Address:   p.Address,
		Email:     p.Email,
		Phone:     p.Phone,
	}
}

// LineFromEntity satırı yanıt biçimine çevirir.
func LineFromEntity(l entity.InvoiceLine) InvoiceLineResponse {
	return InvoiceLineResponse{
		ID:              l.ID,
		Name:            l.Name,
		Description:     l.Description,
		Quantity:        l.Quantity,
		Unit:            l.Unit,
		UnitPrice:       l.UnitPrice,
		DiscountPercent: l.DiscountPercent,
		TaxRate:         l.TaxRate,
		Net:             l.Net,
		Tax:             l.Tax,
		Total:           l.Total,
	}
}
