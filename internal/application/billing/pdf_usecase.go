package billing

import (
	"context"

	"github.com/kullanici/fatura-pro/internal/domain"
	"github.com/kullanici/fatura-pro/internal/domain/repository"
)

// PDFUseCase faturanın yazdırılabilir belgesini üretir. Taslaklar da
// yazdırılabilir; numara alanı boş görünür.
type PDFUseCase struct {
	invoiceRepo repository.InvoiceRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase kullanım senaryosunu kurar.
func NewPDFUseCase(invoiceRepo repository.InvoiceRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, generator: generator}
}

// Generate faturayı yükler ve PDF baytlarını döndürür.
func (uc *PDFUseCase) Generate(ctx context.Context, id string) ([]byte, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateInvoicePDF(ctx, inv)
}
