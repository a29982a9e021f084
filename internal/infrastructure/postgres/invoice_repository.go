package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kullanici/fatura-pro/internal/domain"
	"github.com/kullanici/fatura-pro/internal/domain/entity"
	"github.com/kullanici/fatura-pro/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo InvoiceRepository gerçeklemesi (havuz veya tx ile kullanılabilir).
// Taraf kopyaları ve satırlar JSONB sütunlarında, sıraları korunarak saklanır;
// satırların ayrı tablo yerine belgeyle birlikte tutulması kopya semantiğini
// şemada da görünür kılar.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository adaptörü kurar. Havuz veya tx (Querier) geçilir.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create fatura belgesini kalıcılaştırır.
func (r *InvoiceRepo) Create(invoice *entity.Invoice) error {
	seller, buyer, lines, err := marshalDocument(invoice)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO invoices (id, number, date, seller, buyer, lines, discount_percent,
		                      subtotal, discount_total, tax_total, grand_total,
		                      note, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Number, invoice.Date, seller, buyer, lines,
		invoice.DiscountPercent, invoice.Subtotal, invoice.DiscountTotal,
		invoice.TaxTotal, invoice.GrandTotal,
		invoice.Note, invoice.Status, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update faturanın tüm alanlarını günceller (satırlar, kopyalar, toplamlar,
// numara ve durum dahil).
func (r *InvoiceRepo) Update(invoice *entity.Invoice) error {
	seller, buyer, lines, err := marshalDocument(invoice)
	if err != nil {
		return err
	}
	query := `
		UPDATE invoices
		SET number = $2, date = $3, seller = $4, buyer = $5, lines = $6,
		    discount_percent = $7, subtotal = $8, discount_total = $9,
		    tax_total = $10, grand_total = $11, note = $12, status = $13,
		    updated_at = $14
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		invoice.ID, invoice.Number, invoice.Date, seller, buyer, lines,
		invoice.DiscountPercent, invoice.Subtotal, invoice.DiscountTotal,
		invoice.TaxTotal, invoice.GrandTotal,
		invoice.Note, invoice.Status, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID faturayı tüm alanlarıyla döndürür; yoksa (nil, nil).
func (r *InvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	query := `
		SELECT id, number, date, seller, buyer, lines, discount_percent,
		       subtotal, discount_total, tax_total, grand_total,
		       note, status, created_at, updated_at
		FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// List faturaları tarihe göre azalan sırada, sayfalı listeler. status boş
// değilse yalnızca o durumdakiler döner.
func (r *InvoiceRepo) List(status string, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, number, date, seller, buyer, lines, discount_percent,
		       subtotal, discount_total, tax_total, grand_total,
		       note, status, created_at, updated_at
		FROM invoices
		WHERE ($1 = '' OR status = $1)
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// Delete faturayı ID ile siler. Kesinleşmiş faturanın silinemezliği kullanım
// senaryosunda denetlenir.
func (r *InvoiceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// marshalDocument JSONB sütunları için taraf kopyalarını ve satırları kodlar.
func marshalDocument(invoice *entity.Invoice) (seller, buyer, lines []byte, err error) {
	if seller, err = json.Marshal(invoice.Seller); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal seller: %w", err)
	}
	if buyer, err = json.Marshal(invoice.Buyer); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal buyer: %w", err)
	}
	if invoice.Lines == nil {
		invoice.Lines = []entity.InvoiceLine{}
	}
	if lines, err = json.Marshal(invoice.Lines); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal lines: %w", err)
	}
	return seller, buyer, lines, nil
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var seller, buyer, lines []byte
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.Date, &seller, &buyer, &lines,
		&inv.DiscountPercent, &inv.Subtotal, &inv.DiscountTotal,
		&inv.TaxTotal, &inv.GrandTotal,
		&inv.Note, &inv.Status, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(seller, &inv.Seller); err != nil {
		return nil, fmt.Errorf("unmarshal seller: %w", err)
	}
	if err := json.Unmarshal(buyer, &inv.Buyer); err != nil {
		return nil, fmt.Errorf("unmarshal buyer: %w", err)
	}
	if err := json.Unmarshal(lines, &inv.Lines); err != nil {
		return nil, fmt.Errorf("unmarshal lines: %w", err)
	}
	return &inv, nil
}
