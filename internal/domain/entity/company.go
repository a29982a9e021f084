package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company satıcı firma profilidir (tek kullanıcılı kurulumda tek satır).
// NextSequence yalnızca fatura kesinleştirme sırasında, durum geçişiyle aynı
// veritabanı işlemi içinde bir kez artar.
type Company struct {
	ID             string
	Name           string
	VKN            string          // 10 haneli vergi kimlik numarası
	TaxOffice      string
	Address        string
	Email          string
	Phone          string
	InvoiceSeries  string          // fatura seri kodu, örn. "FTR"
	NextSequence   int64           // bir sonraki fatura sıra numarası (pozitif)
	CurrencyCode   string          // ISO 4217, örn. "TRY"
	DefaultTaxRate decimal.Decimal // varsayılan KDV oranı (yüzde)
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
