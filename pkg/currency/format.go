// Package currency parasal tutarların Türk Lirası olarak sunumunu üstlenir.
// Çekirdek hesaplayıcı sunum biçiminden habersizdir; biçimlendirme yalnızca
// bu katmanda yapılır.
package currency

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.Turkish)

// FormatTRY tutarı tam 2 kesir hanesiyle ve ₺ simgesiyle Türkçe yerel ayara
// göre biçimlendirir: 1234.5 → "₺1.234,50".
func FormatTRY(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return FormatTRYFloat(f)
}

// FormatTRYFloat float tutarları biçimlendirir. Sonlu olmayan değerler
// (NaN, ±Inf) sunum sınırında "₺0,00" olarak gösterilir.
func FormatTRYFloat(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	return printer.Sprintf("₺%v", number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
