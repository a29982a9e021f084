package gib

import "regexp"

// emailPattern izin verici bir biçim kontrolüdür: boşluk ve '@' içermeyen
// yerel kısım, '@', ardından nokta içeren alan adı. Teslim edilebilirlik
// doğrulaması yapılmaz.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail e-posta adresinin sözdizimini doğrular.
// Boş e-postanın geçerli sayılması (alan isteğe bağlı olduğu için)
// çağıranın sorumluluğundadır; bu fonksiyon boş girdi için false döndürür.
func ValidateEmail(value string) bool {
	return emailPattern.MatchString(value)
}
