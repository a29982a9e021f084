package entity

import "time"

// Müşteri türleri. Bireysel müşteride TCKN (11 hane), kurumsalda VKN (10 hane)
// beklenir; vergi dairesi yalnızca kurumsal için zorunludur.
const (
	CustomerKindIndividual = "individual"
	CustomerKindCorporate  = "corporate"
)

// Customer müşteri kataloğu kaydıdır. Fatura, müşterinin referansını değil
// kesinleştirme anındaki kopyasını taşır; sonraki katalog düzenlemeleri eski
// faturaları değiştirmez.
type Customer struct {
	ID        string
	Kind      string // individual | corporate
	Name      string
	TaxID     string // türüne göre TCKN veya VKN
	TaxOffice string
	Address   string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
