package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kullanici/fatura-pro/internal/application/dto"
	"github.com/kullanici/fatura-pro/internal/domain"
	"github.com/kullanici/fatura-pro/internal/domain/entity"
	"github.com/kullanici/fatura-pro/internal/domain/repository"
	"github.com/kullanici/fatura-pro/pkg/gib"
)

// CompanyDefaults profil henüz kaydedilmemişken ayarlar ekranının açılacağı
// varsayılan değerler (yapılandırmadan gelir).
type CompanyDefaults struct {
	InvoiceSeries  string
	CurrencyCode   string
	DefaultTaxRate decimal.Decimal
}

// CompanyUseCase firma profili (ayarlar) iş kuralları. Tek kullanıcılı
// kurulumda tek profil vardır; sıra numarası yalnızca kesinleştirme yoluyla
// değişir, ayarlardan düzenlenemez.
type CompanyUseCase struct {
	repo     repository.CompanyRepository
	defaults CompanyDefaults
}

// NewCompanyUseCase kalıcılık portu ve varsayılanlarla kullanım senaryosunu kurar.
func NewCompanyUseCase(repo repository.CompanyRepository, defaults CompanyDefaults) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, defaults: defaults}
}

// Get firma profilini döndürür. Profil henüz kaydedilmemişse varsayılanlarla
// doldurulmuş, kaydedilmemiş (ID'siz) bir profil döner; ayarlar ekranı bu
// değerlerle açılır.
func (uc *CompanyUseCase) Get() (*dto.CompanyResponse, error) {
	company, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if company == nil {
		return &dto.CompanyResponse{
			InvoiceSeries:  uc.defaults.InvoiceSeries,
			CurrencyCode:   uc.defaults.CurrencyCode,
			DefaultTaxRate: uc.defaults.DefaultTaxRate,
			NextSequence:   1,
		}, nil
	}
	return companyToResponse(company), nil
}

// Update profili doğrular ve ekler/günceller. İlk kayıtta sıra numarası 1'den
// başlar; sonraki güncellemelerde mevcut sayaç korunur.
func (uc *CompanyUseCase) Update(in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if errs := validateCompany(in); len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}

	now := time.Now()
	company, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if company == nil {
		company = &entity.Company{
			ID:           uuid.New().String(),
			NextSequence: 1,
			CreatedAt:    now,
		}
	}

	company.Name = in.Name
	company.VKN = in.VKN
	company.TaxOffice = in.TaxOffice
	company.Address = in.Address
	company.Email = in.Email
	company.Phone = in.Phone
	company.InvoiceSeries = in.InvoiceSeries
	company.CurrencyCode = in.CurrencyCode
	company.DefaultTaxRate = in.DefaultTaxRate
	company.UpdatedAt = now

	if err := uc.repo.Save(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

func validateCompany(in dto.UpdateCompanyRequest) []string {
	var errs []string
	if in.Name == "" {
		errs = append(errs, "firma adı zorunlu")
	}
	if !gib.ValidateVKN(in.VKN) {
		errs = append(errs, "firma VKN geçersiz")
	}
	if in.TaxOffice == "" {
		errs = append(errs, "vergi dairesi zorunlu")
	}
	if in.InvoiceSeries == "" {
		errs = append(errs, "fatura seri kodu zorunlu")
	}
	if in.CurrencyCode == "" {
		errs = append(errs, "para birimi zorunlu")
	}
	if !entity.IsAllowedTaxRate(in.DefaultTaxRate) {
		errs = append(errs, "varsayılan KDV oranı 0, 1, 10 veya 20 olmalı")
	}
	if in.Email != "" && !gib.ValidateEmail(in.Email) {
		errs = append(errs, "firma e-posta adresi geçersiz")
	}
	return errs
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		VKN:            c.VKN,
		TaxOffice:      c.TaxOffice,
		Address:        c.Address,
		Email:          c.Email,
		Phone:          c.Phone,
		InvoiceSeries:  c.InvoiceSeries,
		NextSequence:   c.NextSequence,
		CurrencyCode:   c.CurrencyCode,
		DefaultTaxRate: c.DefaultTaxRate,
	}
}
