package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Ölçü birimleri (sabit küme).
const (
	UnitPiece   = "adet"
	UnitKg      = "kg"
	UnitGram    = "g"
	UnitLitre   = "lt"
	UnitMetre   = "m"
	UnitM2      = "m2"
	UnitM3      = "m3"
	UnitHour    = "saat"
	UnitDay     = "gün"
	UnitMonth   = "ay"
	UnitPackage = "paket"
)

var allowedUnits = map[string]bool{
	UnitPiece: true, UnitKg: true, UnitGram: true, UnitLitre: true,
	UnitMetre: true, UnitM2: true, UnitM3: true, UnitHour: true,
	UnitDay: true, UnitMonth: true, UnitPackage: true,
}

// IsAllowedUnit birimin sabit kümede olup olmadığını söyler.
func IsAllowedUnit(unit string) bool { return allowedUnits[unit] }

// Geçerli KDV oranları (yüzde).
var allowedTaxRates = []int64{0, 1, 10, 20}

// IsAllowedTaxRate oranın izin verilen KDV kümesinde olup olmadığını söyler.
func IsAllowedTaxRate(rate decimal.Decimal) bool {
	for _, r := range allowedTaxRates {
		if rate.Equal(decimal.NewFromInt(r)) {
			return true
		}
	}
	return false
}

// Product ürün/hizmet kataloğu kaydıdır. Bir fatura satırına seçildiğinde
// alanları satıra kopyalanır; satır sonrasında bağımsız düzenlenebilir.
type Product struct {
	ID        string
	Name      string
	Unit      string          // sabit kümeden ölçü birimi
	UnitPrice decimal.Decimal // negatif olamaz
	TaxRate   decimal.Decimal // yüzde; izin verilen kümeden
	CreatedAt time.Time
	UpdatedAt time.Time
}
