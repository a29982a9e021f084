// Package billing fatura toplamlarının hesaplanmasını ve kesinleştirme öncesi
// doğrulamayı içerir. Buradaki fonksiyonlar saftır: G/Ç yapmaz, girdiyi
// değiştirmez ve aynı girdi için her zaman aynı çıktıyı üretir.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/kullanici/fatura-pro/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals hesaplayıcının çıktısıdır: türetilmiş alanları doldurulmuş satırlar
// ve dört belge toplamı.
type Totals struct {
	Lines         []entity.InvoiceLine
	Subtotal      decimal.Decimal // belge iskontosu sonrası net ara toplam
	DiscountTotal decimal.Decimal // belge iskontosu tutarı
	TaxTotal      decimal.Decimal // satır KDV'lerinin toplamı
	GrandTotal    decimal.Decimal // 2 haneye yuvarlanmış genel toplam
}

// Calculate satır ve belge toplamlarını türetir. Satır sırası korunur; boş
// satır listesinde tüm toplamlar sıfırdır.
//
// Satır başına, sırasıyla:
//
//	brüt     = miktar * birim fiyat
//	iskonto  = brüt * satırİskontoYüzdesi / 100
//	net      = brüt - iskonto
//	kdv      = net * kdvYüzdesi / 100
//	toplam   = net + kdv
//
// Belge düzeyinde:
//
//	hamAraToplam = Σ net
//	belgeİskonto = hamAraToplam * belgeİskontoYüzdesi / 100
//	araToplam    = hamAraToplam - belgeİskonto
//	kdvToplam    = Σ kdv   (belge iskontosundan ÖNCE hesaplanır; bkz. not)
//	genelToplam  = yuvarla2(araToplam + kdvToplam)
//
// Not: belge iskontosu satır KDV'lerini yeniden tabanlamaz; KDV her zaman
// satırın kendi (satır iskontosu düşülmüş) net tutarı üzerinden hesaplanır.
// Bu sıralama mevcut sayısal davranışla uyumluluk için bilinçli korunur.
//
// Yuvarlama: ara değerler tam hassasiyette tutulur; yalnızca genel toplam
// 2 kesir hanesine, yarımlar sıfırdan uzağa olacak şekilde yuvarlanır.
func Calculate(lines []entity.InvoiceLine, documentDiscountPercent decimal.Decimal) Totals {
	out := make([]entity.InvoiceLine, len(lines))
	copy(out, lines)

	var rawSubtotal, taxTotal decimal.Decimal
	for i := range out {
		line := &out[i]
		gross := line.Quantity.Mul(line.UnitPrice)
		discount := gross.Mul(line.DiscountPercent).Div(hundred)
		net := gross.Sub(discount)
		tax := net.Mul(line.TaxRate).Div(hundred)

		line.Net = net
		line.Tax = tax
		line.Total = net.Add(tax)

		rawSubtotal = rawSubtotal.Add(net)
		taxTotal = taxTotal.Add(tax)
	}

	discountTotal := rawSubtotal.Mul(documentDiscountPercent).Div(hundred)
	netSubtotal := rawSubtotal.Sub(discountTotal)

	return Totals{
		Lines:         out,
		Subtotal:      netSubtotal,
		DiscountTotal: discountTotal,
		TaxTotal:      taxTotal,
		GrandTotal:    netSubtotal.Add(taxTotal).Round(2),
	}
}

// Apply hesaplanan toplamları faturaya işler; satır sırası değişmez.
func Apply(inv *entity.Invoice) {
	t := Calculate(inv.Lines, inv.DiscountPercent)
	inv.Lines = t.Lines
	inv.Subtotal = t.Subtotal
	inv.DiscountTotal = t.DiscountTotal
	inv.TaxTotal = t.TaxTotal
	inv.GrandTotal = t.GrandTotal
}
