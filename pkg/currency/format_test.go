package currency_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kullanici/fatura-pro/pkg/currency"
)

func TestFormatTRY(t *testing.T) {
	cases := []struct {
		name   string
		amount string
		want   string
	}{
		{"sifir", "0", "₺0,00"},
		{"iki kesir hanesi", "1200", "₺1.200,00"},
		{"binlik ayraci nokta, kesir ayraci virgul", "1234.56", "₺1.234,56"},
		{"milyon", "1234567.89", "₺1.234.567,89"},
		{"tek kesir hanesi tamamlanir", "99.9", "₺99,90"},
		{"negatif", "-45.5", "₺-45,50"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := decimal.RequireFromString(tc.amount)
			assert.Equal(t, tc.want, currency.FormatTRY(d))
		})
	}
}

// Sonlu olmayan değerler sunumda sıfıra düşer; hesaplayıcıdan asla NaN/Inf
// çıkmaz ama sunum katmanı yine de korunur.
func TestFormatTRYFloat_SonluOlmayanDegerler(t *testing.T) {
	assert.Equal(t, "₺0,00", currency.FormatTRYFloat(math.NaN()))
	assert.Equal(t, "₺0,00", currency.FormatTRYFloat(math.Inf(1)))
	assert.Equal(t, "₺0,00", currency.FormatTRYFloat(math.Inf(-1)))
}
