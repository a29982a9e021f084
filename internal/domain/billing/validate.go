package billing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kullanici/fatura-pro/internal/domain/entity"
	"github.com/kullanici/fatura-pro/pkg/gib"
)

// ValidateForFinalize faturanın kesinleştirilebilir olup olmadığını denetler
// ve kullanıcıya gösterilecek hata mesajlarının listesini döndürür. Boş liste
// fatura kesinleştirilebilir demektir. Fonksiyon hiçbir durumu değiştirmez ve
// asla panic etmez; çağıran taraf boş olmayan listede kaydı iptal eder.
func ValidateForFinalize(inv *entity.Invoice) []string {
	var errs []string

	if len(inv.Lines) == 0 {
		errs = append(errs, "fatura en az bir satır içermeli")
	}
	for i, line := range inv.Lines {
		errs = append(errs, validateLine(i+1, line)...)
	}
	errs = append(errs, ValidateBuyer(inv.Buyer)...)

	return errs
}

func validateLine(no int, line entity.InvoiceLine) []string {
	var errs []string
	if line.Name == "" {
		errs = append(errs, fmt.Sprintf("satır %d: ürün/hizmet adı zorunlu", no))
	}
	if !line.Quantity.GreaterThan(decimal.Zero) {
		errs = append(errs, fmt.Sprintf("satır %d: miktar sıfırdan büyük olmalı", no))
	}
	if line.UnitPrice.LessThan(decimal.Zero) {
		errs = append(errs, fmt.Sprintf("satır %d: birim fiyat negatif olamaz", no))
	}
	if line.TaxRate.LessThan(decimal.Zero) || line.TaxRate.GreaterThan(hundred) {
		errs = append(errs, fmt.Sprintf("satır %d: KDV oranı 0-100 aralığında olmalı", no))
	}
	return errs
}

// ValidateBuyer alıcı bilgilerini denetler: ad ve adres zorunlu, vergi kimliği
// türüne uygun (TCKN/VKN), kurumsal alıcıda vergi dairesi zorunlu, e-posta
// doluysa biçimi geçerli olmalı.
func ValidateBuyer(buyer entity.Party) []string {
	var errs []string

	if buyer.Name == "" {
		errs = append(errs, "alıcı adı zorunlu")
	}
	if buyer.Address == "" {
		errs = append(errs, "alıcı adresi zorunlu")
	}

	switch buyer.Kind {
	case entity.CustomerKindIndividual:
		if !gib.ValidateTCKN(buyer.TaxID) {
			errs = append(errs, "alıcı TCKN geçersiz")
		}
	case entity.CustomerKindCorporate:
		if !gib.ValidateVKN(buyer.TaxID) {
			errs = append(errs, "alıcı VKN geçersiz")
		}
		if buyer.TaxOffice == "" {
			errs = append(errs, "kurumsal alıcı için vergi dairesi zorunlu")
		}
	default:
		errs = append(errs, "alıcı türü individual veya corporate olmalı")
	}

	// E-posta isteğe bağlıdır; yalnızca doluysa biçimi denetlenir.
	if buyer.Email != "" && !gib.ValidateEmail(buyer.Email) {
		errs = append(errs, "alıcı e-posta adresi geçersiz")
	}

	return errs
}
