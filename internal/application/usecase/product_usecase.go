package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kullanici/fatura-pro/internal/application/dto"
	"github.com/kullanici/fatura-pro/internal/domain"
	"github.com/kullanici/fatura-pro/internal/domain/entity"
	"github.com/kullanici/fatura-pro/internal/domain/repository"
)

// ProductUseCase ürün/hizmet kataloğu iş kuralları. Ürün bir fatura satırına
// seçildiğinde alanları kopyalanır; satır sonrasında bağımsızdır.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase kullanım senaryosunu kurar.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create yeni ürün oluşturur.
func (uc *ProductUseCase) Create(in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if errs := validateProduct(in); len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Unit:      in.Unit,
		UnitPrice: in.UnitPrice,
		TaxRate:   in.TaxRate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

// GetByID ürünü döndürür.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return productToResponse(product), nil
}

// List ürünleri sayfalı listeler.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *productToResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update mevcut ürünü doğrulayıp günceller.
func (uc *ProductUseCase) Update(id string, in dto.SaveProductRequest) (*dto.ProductResponse, error) {
	if errs := validateProduct(in); len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	product.Name = in.Name
	product.Unit = in.Unit
	product.UnitPrice = in.UnitPrice
	product.TaxRate = in.TaxRate
	product.UpdatedAt = time.Now()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

// Delete ürünü katalogdan kaldırır.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validateProduct(in dto.SaveProductRequest) []string {
	var errs []string
	if in.Name == "" {
		errs = append(errs, "ürün adı zorunlu")
	}
	if !entity.IsAllowedUnit(in.Unit) {
		errs = append(errs, "ölçü birimi geçersiz")
	}
	if in.UnitPrice.LessThan(decimal.Zero) {
		errs = append(errs, "birim fiyat negatif olamaz")
	}
	if !entity.IsAllowedTaxRate(in.TaxRate) {
		errs = append(errs, "KDV oranı 0, 1, 10 veya 20 olmalı")
	}
	return errs
}

func productToResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Unit:      p.Unit,
		UnitPrice: p.UnitPrice,
		TaxRate:   p.TaxRate,
	}
}
