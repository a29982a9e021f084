package domain

import (
	"errors"
	"strings"
)

// Alan (domain) hataları; dış bağımlılık içermez.
var (
	ErrNotFound     = errors.New("kayıt bulunamadı")
	ErrInvalidInput = errors.New("geçersiz girdi")
	ErrDuplicate    = errors.New("kayıt zaten mevcut")
	ErrConflict     = errors.New("mevcut durumla çelişki")
)

// ValidationError kullanıcıya gösterilecek doğrulama mesajlarını taşır.
// Çekirdek doğrulayıcılar hata fırlatmaz; kayıt akışı boş olmayan listeyi bu
// tipe sarar ve kaydı iptal eder (kısmi kayıt yok).
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "doğrulama başarısız: " + strings.Join(e.Messages, "; ")
}

// AsValidationError err bir ValidationError ise mesaj listesini döndürür.
func AsValidationError(err error) ([]string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Messages, true
	}
	return nil, false
}
