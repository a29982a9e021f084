// Package gib, GİB (Gelir İdaresi Başkanlığı) kimlik doğrulamalarını içerir:
// TCKN (11 haneli kişisel kimlik numarası) ve VKN (10 haneli kurumsal vergi
// kimlik numarası) sağlama algoritmaları ile basit e-posta biçim kontrolü.
// Fonksiyonlar hiçbir zaman hata fırlatmaz; bozuk girdi yalnızca false döndürür.
package gib

// ValidateTCKN TCKN'nin sağlama hanelerini doğrular.
// Kurallar:
//   - tam 11 ASCII rakam, ilk hane 0 olamaz
//   - d10 = ((tekToplam*7) - çiftToplam) mod 10 (negatifse [0,9] aralığına normalize edilir)
//   - d11 = (tekToplam + çiftToplam + d10) mod 10
//
// tekToplam = d1+d3+d5+d7+d9, çiftToplam = d2+d4+d6+d8 (1 tabanlı hane sırası).
func ValidateTCKN(value string) bool {
	if len(value) != 11 || value[0] == '0' {
		return false
	}
	digits, ok := asDigits(value)
	if !ok {
		return false
	}
	check1, check2 := tcknCheckDigits(digits)
	return digits[9] == check1 && digits[10] == check2
}

// ComputeTCKNCheckDigits ilk 9 haneden iki sağlama hanesini üretir.
// Test verisi üretmek ve eksik numarayı tamamlamak için kullanılır.
func ComputeTCKNCheckDigits(prefix string) (d10, d11 byte, ok bool) {
	if len(prefix) < 9 || prefix[0] == '0' {
		return 0, 0, false
	}
	digits, valid := asDigits(prefix[:9])
	if !valid {
		return 0, 0, false
	}
	full := make([]int, 11)
	copy(full, digits)
	c1, c2 := tcknCheckDigits(full)
	return byte('0' + c1), byte('0' + c2), true
}

// tcknCheckDigits sağlama hanelerini hesaplar. digits en az 10 eleman içermeli;
// d11 hesabında 10. hane (indeks 9) hesaplanan c1 olarak alınır.
func tcknCheckDigits(digits []int) (c1, c2 int) {
	oddSum := digits[0] + digits[2] + digits[4] + digits[6] + digits[8]
	evenSum := digits[1] + digits[3] + digits[5] + digits[7]
	c1 = ((oddSum*7 - evenSum) % 10 + 10) % 10
	c2 = (oddSum + evenSum + c1) % 10
	return c1, c2
}

// asDigits rakam dizisini int dilimine çevirir; rakam dışı karakter varsa ok=false.
func asDigits(s string) ([]int, bool) {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		out[i] = int(c - '0')
	}
	return out, true
}
