package gib

// vknWeights VKN sağlama hanesi için pozisyonel ağırlıklar.
// İlk 9 haneye soldan sağa uygulanır.
var vknWeights = [9]int{9, 8, 7, 6, 5, 4, 3, 2, 1}

// ValidateVKN 10 haneli vergi kimlik numarasının sağlama hanesini doğrular.
// Ağırlıklı toplamın mod 11 kalanı 2'den küçükse kalanın kendisi, değilse
// 11-kalan beklenen sağlama hanesidir.
func ValidateVKN(value string) bool {
	if len(value) != 10 {
		return false
	}
	digits, ok := asDigits(value)
	if !ok {
		return false
	}
	return digits[9] == vknCheckDigit(digits)
}

// ComputeVKNCheckDigit ilk 9 haneden sağlama hanesini üretir.
func ComputeVKNCheckDigit(prefix string) (byte, bool) {
	if len(prefix) < 9 {
		return 0, false
	}
	digits, ok := asDigits(prefix[:9])
	if !ok {
		return 0, false
	}
	return byte('0' + vknCheckDigit(digits)), true
}

func vknCheckDigit(digits []int) int {
	var sum int
	for i := 0; i < 9; i++ {
		sum += digits[i] * vknWeights[i]
	}
	remainder := sum % 11
	if remainder < 2 {
		return remainder
	}
	return 11 - remainder
}
