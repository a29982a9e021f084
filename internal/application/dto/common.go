package dto

import "github.com/shopspring/decimal"

// PageRequest listelemeler için sayfalama.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage Limit/Offset sıfırsa varsayılanları uygular.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse yanıtlardaki sayfa üst verisi.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// ErrorResponse HTTP hata gövdesi.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse kesinleştirme/kayıt doğrulamasında dönen yapı:
// kullanıcıya gösterilecek mesajların listesi. Çekirdek asla hata fırlatmaz;
// başarısız doğrulama bu liste olarak taşınır ve kayıt iptal edilir.
type ValidationErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

var percentCeiling = decimal.NewFromInt(100)

// ClampPercent yüzdeyi [0,100] aralığına sıkıştırır. Hesaplayıcı çağrılmadan
// önce belge iskontosu bu sınıra çekilir.
func ClampPercent(p decimal.Decimal) decimal.Decimal {
	if p.IsNegative() {
		return decimal.Zero
	}
	if p.GreaterThan(percentCeiling) {
		return percentCeiling
	}
	return p
}
