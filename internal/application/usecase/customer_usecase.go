package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/kullanici/fatura-pro/internal/application/dto"
	"github.com/kullanici/fatura-pro/internal/domain"
	"github.com/kullanici/fatura-pro/internal/domain/entity"
	"github.com/kullanici/fatura-pro/internal/domain/repository"
	"github.com/kullanici/fatura-pro/pkg/gib"
)

// CustomerUseCase müşteri kataloğu iş kuralları. Katalog kayıtları kullanıcı
// silene kadar yaşar; faturalar kopyayla çalıştığı için buradaki düzenlemeler
// geçmiş faturaları etkilemez.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase kullanım senaryosunu kurar.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create yeni müşteri oluşturur. Aynı vergi kimliğiyle kayıt varsa
// domain.ErrDuplicate döner.
func (uc *CustomerUseCase) Create(in dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	if errs := validateCustomer(in); len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}
	existing, _ := uc.repo.GetByTaxID(in.TaxID)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Kind:      in.Kind,
		Name:      in.Name,
		TaxID:     in.TaxID,
		TaxOffice: in.TaxOffice,
		Address:   in.Address,
		Email:     in.Email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

// GetByID müşteriyi döndürür.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customerToResponse(customer), nil
}

// List müşterileri sayfalı listeler.
func (uc *CustomerUseCase) List(limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *customerToResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Update mevcut müşteriyi doğrulayıp günceller.
func (uc *CustomerUseCase) Update(id string, in dto.SaveCustomerRequest) (*dto.CustomerResponse, error) {
	if errs := validateCustomer(in); len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}

	customer.Kind = in.Kind
	customer.Name = in.Name
	customer.TaxID = in.TaxID
	customer.TaxOffice = in.TaxOffice
	customer.Address = in.Address
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.UpdatedAt = time.Now()

	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return customerToResponse(customer), nil
}

// Delete müşteriyi katalogdan kaldırır. Geçmiş faturalar kopya taşıdığı için
// etkilenmez.
func (uc *CustomerUseCase) Delete(id string) error {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// validateCustomer katalog düzeyindeki kuralları denetler. Adres yalnızca
// kesinleştirmede zorunludur; burada istenmez.
func validateCustomer(in dto.SaveCustomerRequest) []string {
	var errs []string
	if in.Name == "" {
		errs = append(errs, "müşteri adı zorunlu")
	}
	switch in.Kind {
	case entity.CustomerKindIndividual:
		if !gib.ValidateTCKN(in.TaxID) {
			errs = append(errs, "TCKN geçersiz")
		}
	case entity.CustomerKindCorporate:
		if !gib.ValidateVKN(in.TaxID) {
			errs = append(errs, "VKN geçersiz")
		}
		if in.TaxOffice == "" {
			errs = append(errs, "kurumsal müşteri için vergi dairesi zorunlu")
		}
	default:
		errs = append(errs, "müşteri türü individual veya corporate olmalı")
	}
	if in.Email != "" && !gib.ValidateEmail(in.Email) {
		errs = append(errs, "e-posta adresi geçersiz")
	}
	return errs
}

func customerToResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Kind:      c.Kind,
		Name:      c.Name,
		TaxID:     c.TaxID,
		TaxOffice: c.TaxOffice,
		Address:   c.Address,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}
