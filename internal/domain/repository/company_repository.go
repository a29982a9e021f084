package repository

import "github.com/kullanici/fatura-pro/internal/domain/entity"

// CompanyRepository firma profili için kalıcılık portu. Tek kullanıcılı
// kurulumda tek bir firma satırı vardır.
type CompanyRepository interface {
	// Get firma profilini döndürür; henüz oluşturulmamışsa (nil, nil).
	Get() (*entity.Company, error)
	// Save profili ekler veya günceller (upsert).
	Save(company *entity.Company) error
	// ConsumeSequence sıra numarasını atomik olarak bir artırır ve tüketilen
	// değeri döndürür. Yalnızca kesinleştirme işlemi içinde çağrılır.
	ConsumeSequence(companyID string) (int64, error)
}
