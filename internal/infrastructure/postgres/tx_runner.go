package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kullanici/fatura-pro/internal/application/billing"
	"github.com/kullanici/fatura-pro/internal/domain/repository"
)

// TxRunner'ın billing.TxRunner'ı gerçeklediğinden emin ol.
var _ billing.TxRunner = (*TxRunner)(nil)

// TxRunner callback'leri tek bir PostgreSQL işlemi içinde yürütür.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner havuzla runner'ı kurar.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunInvoicing bir işlem başlatır, fn'i işleme bağlı depolarla çalıştırır ve
// Commit ya da Rollback yapar. Kesinleştirmede sıra numarası tüketimi ile
// durum geçişi böylece ya birlikte kalıcı olur ya da hiç.
func (r *TxRunner) RunInvoicing(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	invoiceRepo := NewInvoiceRepository(tx)
	companyRepo := NewCompanyRepository(tx)

	if err := fn(invoiceRepo, companyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
