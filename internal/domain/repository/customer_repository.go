package repository

import "github.com/kullanici/fatura-pro/internal/domain/entity"

// CustomerRepository müşteri kataloğu için kalıcılık portu.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByTaxID(taxID string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
