package billing

import (
	"context"

	"github.com/kullanici/fatura-pro/internal/domain/entity"
	"github.com/kullanici/fatura-pro/internal/domain/repository"
)

// TxRunner kesinleştirme adımını tek bir veritabanı işlemi içinde yürütür:
// durum geçişi ve sıra numarası tüketimi ya birlikte kalıcı olur ya da hiç.
type TxRunner interface {
	RunInvoicing(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		companyRepo repository.CompanyRepository,
	) error) error
}

// InvoicePDFGenerator faturanın yazdırılabilir belgesini üretir.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice) ([]byte, error)
}
