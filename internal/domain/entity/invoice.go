package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fatura durumları. Taslak fatura serbestçe düzenlenir; kesinleşen fatura
// değiştirilemez ve firma sıra numarasını tam bir kez tüketmiştir.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusFinalized = "finalized"
)

// Party faturadaki taraf bilgisinin dondurulmuş kopyasıdır (satıcı veya alıcı).
// Kayıt anında katalogdan değer kopyalanır; referans tutulmaz.
type Party struct {
	Kind      string `json:"kind,omitempty"` // alıcı için: individual | corporate
	Name      string `json:"name"`
	TaxID     string `json:"tax_id"`
	TaxOffice string `json:"tax_office,omitempty"`
	Address   string `json:"address"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// InvoiceLine bir fatura satırıdır. Net, Tax ve Total türetilmiş alanlardır;
// hesaplayıcı tarafından yeniden üretilir, elle düzenlenmez.
type InvoiceLine struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"` // satır iskontosu, 0-100
	TaxRate         decimal.Decimal `json:"tax_rate"`         // KDV yüzdesi

	// Türetilmiş alanlar (tam hassasiyet; yuvarlama yalnız belge düzeyinde)
	Net   decimal.Decimal `json:"net"`
	Tax   decimal.Decimal `json:"tax"`
	Total decimal.Decimal `json:"total"`
}

// Invoice fatura belgesidir. Seller ve Buyer kayıt anındaki kopyalardır;
// satır sırası hesaplayıcı tarafından asla değiştirilmez.
type Invoice struct {
	ID              string
	Number          string // <seri><yıl>-<6 haneli sıra>; kesinleştirmede boşsa üretilir
	Date            time.Time
	Seller          Party
	Buyer           Party
	Lines           []InvoiceLine
	DiscountPercent decimal.Decimal // belge iskontosu, 0-100

	// Türetilmiş belge toplamları
	Subtotal      decimal.Decimal // belge iskontosu sonrası net ara toplam
	DiscountTotal decimal.Decimal // belge iskontosu tutarı
	TaxTotal      decimal.Decimal // toplam KDV (belge iskontosundan önce hesaplanır)
	GrandTotal    decimal.Decimal // 2 haneye yuvarlanmış genel toplam

	Note      string
	Status    string // draft | finalized
	CreatedAt time.Time
	UpdatedAt time.Time
}
