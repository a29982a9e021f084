// Package pdf faturanın yazdırılabilir görüntüsünü üretir.
//
// A4 sayfa yerleşimi:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  BAŞLIK: Firma Unvanı + VKN  │  FATURA + N° + Tarih          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SATICI: Adres / Tel / E-posta                               │
//	│  ALICI: Unvan + TCKN/VKN + Vergi Dairesi + iletişim          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLO: Miktar | Açıklama | B.Fiyat | İsk.% | KDV% | Tutar   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOPLAMLAR: Ara Toplam / İskonto / KDV / GENEL TOPLAM        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALTBİLGİ: Not + açıklama satırı                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appbilling "github.com/kullanici/fatura-pro/internal/application/billing"
	"github.com/kullanici/fatura-pro/internal/domain/entity"
	"github.com/kullanici/fatura-pro/pkg/currency"
)

// ── Renk paleti ───────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 178, Green: 24, Blue: 43}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator billing.InvoicePDFGenerator'ı Maroto v2 ile gerçekler.
// Taslaklar da yazdırılabilir; numara yerine TASLAK ibaresi basılır.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator üreticiyi kurar.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF PDF'i üretir ve baytlarını döndürür.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(_ context.Context, invoice *entity.Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Fatura "+invoice.Number, true).
		WithAuthor(invoice.Seller.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sellerRow(invoice.Seller))
	m.AddRows(buyerRow(invoice.Buyer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(invoice.Lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	if invoice.Note != "" {
		m.AddRows(line.NewRow(2))
		m.AddRows(noteRow(invoice.Note))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: belge üretimi: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Bölümler ──────────────────────────────────────────────────────────────────

// headerRow: firma unvanı + VKN (sol), FATURA + numara + tarih (sağ).
func headerRow(invoice *entity.Invoice) core.Row {
	number := invoice.Number
	if number == "" {
		number = "TASLAK"
	}
	date := invoice.Date.Format("02.01.2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(invoice.Seller.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("VKN: "+invoice.Seller.TaxID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FATURA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Tarih: "+date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// sellerRow: satıcı bilgileri (kesinleştirme anındaki dondurulmuş kopya).
func sellerRow(seller entity.Party) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SATICI", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Adres: %s   |   Tel: %s   |   E-posta: %s",
				nonEmpty(seller.Address, "—"),
				nonEmpty(seller.Phone, "—"),
				nonEmpty(seller.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// buyerRow: alıcı bilgileri.
func buyerRow(buyer entity.Party) core.Row {
	taxLabel := "VKN"
	if buyer.Kind == entity.CustomerKindIndividual {
		taxLabel = "TCKN"
	}
	contact := fmt.Sprintf("%s: %s", taxLabel, buyer.TaxID)
	if buyer.TaxOffice != "" {
		contact += "   |   Vergi Dairesi: " + buyer.TaxOffice
	}
	contact += fmt.Sprintf("   |   E-posta: %s   |   Tel: %s",
		nonEmpty(buyer.Email, "—"), nonEmpty(buyer.Phone, "—"))

	return row.New(16).Add(
		col.New(12).Add(
			text.New("ALICI", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(buyer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contact, props.Text{Size: 8, Top: 11, Color: colorGray}),
			text.New("Adres: "+buyer.Address, props.Text{Size: 8, Top: 14, Color: colorGray}),
		),
	)
}

// tableHeaderRow: satır tablosu başlığı.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Miktar", 1, align.Center),
		h("Açıklama", 4, align.Left),
		h("Birim", 1, align.Center),
		h("Birim Fiyat", 2, align.Right),
		h("İsk.%", 1, align.Center),
		h("KDV%", 1, align.Center),
		h("Tutar", 2, align.Right),
	)
}

// tableLineRows: her fatura satırı için bir sıra; satır sırası korunur.
func tableLineRows(lines []entity.InvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				l.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				l.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				l.Unit,
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				currency.FormatTRY(l.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				l.DiscountPercent.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				l.TaxRate.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				currency.FormatTRY(l.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: sağa dayalı toplam bloğu.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(32).Add(
		col.New(3),
		col.New(4).Add(
			label("Ara Toplam:"),
			label("İskonto:"),
			label("KDV Toplamı:"),
			grandLabel("GENEL TOPLAM:"),
		),
		col.New(4).Add(
			value(currency.FormatTRY(invoice.Subtotal)),
			value(currency.FormatTRY(invoice.DiscountTotal)),
			value(currency.FormatTRY(invoice.TaxTotal)),
			grandValue(currency.FormatTRY(invoice.GrandTotal)),
		),
		col.New(1),
	)
}

// noteRow: fatura notu.
func noteRow(note string) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New("Not:", props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
		text.New(note, props.Text{Size: 8, Top: 5, Color: colorGray}),
	))
}

// ── yardımcılar ───────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
