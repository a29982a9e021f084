package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kullanici/fatura-pro/internal/domain"
	"github.com/kullanici/fatura-pro/internal/domain/entity"
	"github.com/kullanici/fatura-pro/internal/domain/repository"
)

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo CompanyRepository portunun PostgreSQL gerçeklemesi (havuz veya
// tx ile kullanılabilir). Tek kullanıcılı kurulumda companies tablosunda tek
// satır bulunur.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository adaptörü kurar. Havuz veya tx (Querier) geçilir.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Get firma profilini döndürür; henüz kaydedilmemişse (nil, nil).
func (r *CompanyRepo) Get() (*entity.Company, error) {
	query := `
		SELECT id, name, vkn, tax_office, address, email, phone,
		       invoice_series, next_sequence, currency_code, default_tax_rate,
		       created_at, updated_at
		FROM companies LIMIT 1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query).Scan(
		&c.ID, &c.Name, &c.VKN, &c.TaxOffice, &c.Address, &c.Email, &c.Phone,
		&c.InvoiceSeries, &c.NextSequence, &c.CurrencyCode, &c.DefaultTaxRate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Save profili ekler veya günceller (upsert).
func (r *CompanyRepo) Save(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, vkn, tax_office, address, email, phone,
		                       invoice_series, next_sequence, currency_code, default_tax_rate,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id)
		DO UPDATE SET name = EXCLUDED.name, vkn = EXCLUDED.vkn,
		              tax_office = EXCLUDED.tax_office, address = EXCLUDED.address,
		              email = EXCLUDED.email, phone = EXCLUDED.phone,
		              invoice_series = EXCLUDED.invoice_series,
		              currency_code = EXCLUDED.currency_code,
		              default_tax_rate = EXCLUDED.default_tax_rate,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		company.ID, company.Name, company.VKN, company.TaxOffice, company.Address,
		company.Email, company.Phone, company.InvoiceSeries, company.NextSequence,
		company.CurrencyCode, company.DefaultTaxRate,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save company: %w", err)
	}
	return nil
}

// ConsumeSequence sıra numarasını atomik olarak bir artırır ve tüketilen
// değeri döndürür. Kesinleştirme işlemi içinde, tx'e bağlı depo üzerinden
// çağrılır; UPDATE satır kilidi eşzamanlı kesinleştirmelerde çifte numarayı
// engeller.
func (r *CompanyRepo) ConsumeSequence(companyID string) (int64, error) {
	query := `
		UPDATE companies SET next_sequence = next_sequence + 1
		WHERE id = $1
		RETURNING next_sequence - 1`
	var seq int64
	err := r.q.QueryRow(context.Background(), query, companyID).Scan(&seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("consume sequence: %w", err)
	}
	return seq, nil
}
