package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kullanici/fatura-pro/internal/domain/billing"
	"github.com/kullanici/fatura-pro/internal/domain/entity"
)

// Geçerli bir taslak fatura; testler tek alanı bozarak mesaj listesini doğrular.
func validInvoice() *entity.Invoice {
	return &entity.Invoice{
		Buyer: entity.Party{
			Kind:      entity.CustomerKindCorporate,
			Name:      "Örnek Ticaret A.Ş.",
			TaxID:     "1234567890",
			TaxOffice: "Kadıköy",
			Address:   "Bağdat Cad. No:1, İstanbul",
			Email:     "muhasebe@ornek.com.tr",
		},
		Lines: []entity.InvoiceLine{
			{
				Name:      "Danışmanlık",
				Quantity:  decimal.NewFromInt(2),
				Unit:      entity.UnitHour,
				UnitPrice: decimal.NewFromInt(500),
				TaxRate:   decimal.NewFromInt(20),
			},
		},
		Status: entity.InvoiceStatusDraft,
	}
}

func TestValidateForFinalize_GecerliFatura(t *testing.T) {
	assert.Empty(t, billing.ValidateForFinalize(validInvoice()))
}

func TestValidateForFinalize_BosSatirListesi(t *testing.T) {
	inv := validInvoice()
	inv.Lines = nil

	errs := billing.ValidateForFinalize(inv)
	assert.Contains(t, errs, "fatura en az bir satır içermeli")
}

func TestValidateForFinalize_SatirHatalari(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entity.InvoiceLine)
		want   string
	}{
		{
			name:   "bos ad",
			mutate: func(l *entity.InvoiceLine) { l.Name = "" },
			want:   "satır 1: ürün/hizmet adı zorunlu",
		},
		{
			name:   "sifir miktar",
			mutate: func(l *entity.InvoiceLine) { l.Quantity = decimal.Zero },
			want:   "satır 1: miktar sıfırdan büyük olmalı",
		},
		{
			name:   "negatif miktar",
			mutate: func(l *entity.InvoiceLine) { l.Quantity = decimal.NewFromInt(-1) },
			want:   "satır 1: miktar sıfırdan büyük olmalı",
		},
		{
			name:   "negatif birim fiyat",
			mutate: func(l *entity.InvoiceLine) { l.UnitPrice = decimal.NewFromInt(-5) },
			want:   "satır 1: birim fiyat negatif olamaz",
		},
		{
			name:   "KDV orani 100 ustu",
			mutate: func(l *entity.InvoiceLine) { l.TaxRate = decimal.NewFromInt(120) },
			want:   "satır 1: KDV oranı 0-100 aralığında olmalı",
		},
		{
			name:   "negatif KDV orani",
			mutate: func(l *entity.InvoiceLine) { l.TaxRate = decimal.NewFromInt(-1) },
			want:   "satır 1: KDV oranı 0-100 aralığında olmalı",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := validInvoice()
			tc.mutate(&inv.Lines[0])
			assert.Contains(t, billing.ValidateForFinalize(inv), tc.want)
		})
	}
}

func TestValidateForFinalize_AliciHatalari(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entity.Party)
		want   string
	}{
		{
			name:   "bos ad",
			mutate: func(p *entity.Party) { p.Name = "" },
			want:   "alıcı adı zorunlu",
		},
		{
			name:   "bos adres",
			mutate: func(p *entity.Party) { p.Address = "" },
			want:   "alıcı adresi zorunlu",
		},
		{
			name:   "kurumsalda bos vergi dairesi",
			mutate: func(p *entity.Party) { p.TaxOffice = "" },
			want:   "kurumsal alıcı için vergi dairesi zorunlu",
		},
		{
			name:   "gecersiz VKN",
			mutate: func(p *entity.Party) { p.TaxID = "1234567891" },
			want:   "alıcı VKN geçersiz",
		},
		{
			name:   "gecersiz e-posta",
			mutate: func(p *entity.Party) { p.Email = "muhasebe.ornek" },
			want:   "alıcı e-posta adresi geçersiz",
		},
		{
			name:   "bilinmeyen tur",
			mutate: func(p *entity.Party) { p.Kind = "sahis" },
			want:   "alıcı türü individual veya corporate olmalı",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			inv := validInvoice()
			tc.mutate(&inv.Buyer)
			assert.Contains(t, billing.ValidateForFinalize(inv), tc.want)
		})
	}
}

func TestValidateForFinalize_BireyselAliciTCKN(t *testing.T) {
	inv := validInvoice()
	inv.Buyer.Kind = entity.CustomerKindIndividual
	inv.Buyer.TaxOffice = ""

	inv.Buyer.TaxID = "12345678950" // geçerli TCKN
	assert.Empty(t, billing.ValidateForFinalize(inv))

	inv.Buyer.TaxID = "12345678951"
	assert.Contains(t, billing.ValidateForFinalize(inv), "alıcı TCKN geçersiz")

	inv.Buyer.TaxID = "1234567890" // VKN uzunluğu bireysel için geçersiz
	assert.Contains(t, billing.ValidateForFinalize(inv), "alıcı TCKN geçersiz")
}

// E-posta isteğe bağlı: boş e-posta hata üretmez.
func TestValidateForFinalize_BosEpostaGecerli(t *testing.T) {
	inv := validInvoice()
	inv.Buyer.Email = ""
	assert.Empty(t, billing.ValidateForFinalize(inv))
}

func TestValidateForFinalize_BirdenCokHataBirikir(t *testing.T) {
	inv := validInvoice()
	inv.Lines = nil
	inv.Buyer.Name = ""
	inv.Buyer.Address = ""

	errs := billing.ValidateForFinalize(inv)
	assert.GreaterOrEqual(t, len(errs), 3, "tüm hatalar tek listede birikmeli: %v", errs)
}
