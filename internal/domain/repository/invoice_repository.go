package repository

import "github.com/kullanici/fatura-pro/internal/domain/entity"

// InvoiceRepository faturalar için kalıcılık portu. Satırlar ve taraf
// kopyaları fatura kaydıyla birlikte, sıraları korunarak saklanır.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	// Update faturanın tüm alanlarını (satırlar, taraf kopyaları, toplamlar,
	// numara ve durum dahil) günceller.
	Update(invoice *entity.Invoice) error
	GetByID(id string) (*entity.Invoice, error)
	// List faturaları tarihe göre azalan sırada döndürür; status boş değilse
	// yalnızca o durumdakileri.
	List(status string, limit, offset int) ([]*entity.Invoice, error)
	Delete(id string) error
}
