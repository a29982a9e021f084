package repository

import "github.com/kullanici/fatura-pro/internal/domain/entity"

// ProductRepository ürün/hizmet kataloğu için kalıcılık portu.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
}
