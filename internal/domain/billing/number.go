package billing

import "fmt"

// InvoiceNumber fatura numarasını üretir: <seri><4 haneli yıl>-<6 haneli sıra>.
// Örnek: ("FTR", 2026, 7) → "FTR2026-000007".
func InvoiceNumber(series string, year int, sequence int64) string {
	return fmt.Sprintf("%s%04d-%06d", series, year, sequence)
}
