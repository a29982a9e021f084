package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/kullanici/fatura-pro/internal/application/billing"
	"github.com/kullanici/fatura-pro/internal/application/dto"
	apphttp "github.com/kullanici/fatura-pro/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test yardımcıları
// ──────────────────────────────────────────────────────────────────────────────

// buildPreviewApp yalnızca anlık hesap rotasını taşıyan küçük bir Fiber
// uygulaması kurar. Preview yan etkisizdir; depo gerekmez.
func buildPreviewApp() *fiber.App {
	app := fiber.New()
	uc := appbilling.NewInvoiceUseCase(nil, nil, nil, nil)
	handler := apphttp.NewInvoiceHandler(uc, nil)
	app.Post("/api/invoices/preview", handler.Preview)
	return app
}

func doPreview(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/invoices/preview",
		bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Preview rotası
// ──────────────────────────────────────────────────────────────────────────────

// 2 x 500 TL + %20 KDV, %10 belge iskontosu: KDV belge iskontosundan önce
// hesaplanır, genel toplam 900 + 200 = 1100.
func TestPreview_BelgeIskontoluHesap(t *testing.T) {
	app := buildPreviewApp()
	resp := doPreview(t, app, `{
		"lines": [
			{"name": "Danışmanlık", "quantity": "2", "unit": "saat", "unit_price": "500", "discount_percent": "0", "tax_rate": "20"}
		],
		"discount_percent": "10"
	}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.PreviewInvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

	assert.Equal(t, "900", out.Totals.Subtotal.String())
	assert.Equal(t, "100", out.Totals.DiscountTotal.String())
	assert.Equal(t, "200", out.Totals.TaxTotal.String())
	assert.Equal(t, "1100", out.Totals.GrandTotal.String())
	assert.Equal(t, "₺1.100,00", out.Totals.GrandTotalFormatted)

	require.Len(t, out.Lines, 1)
	assert.Equal(t, "1000", out.Lines[0].Net.String(), "satır neti belge iskontosundan etkilenmez")
	assert.Equal(t, "200", out.Lines[0].Tax.String())
}

// Boş satır listesi geçerli bir anlık hesap isteğidir; tüm toplamlar sıfır döner.
func TestPreview_BosListe(t *testing.T) {
	app := buildPreviewApp()
	resp := doPreview(t, app, `{"lines": [], "discount_percent": "0"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.PreviewInvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Totals.GrandTotal.IsZero())
	assert.Equal(t, "₺0,00", out.Totals.GrandTotalFormatted)
}

// Satır sırası yanıtta korunur.
func TestPreview_SatirSirasiKorunur(t *testing.T) {
	app := buildPreviewApp()
	resp := doPreview(t, app, `{
		"lines": [
			{"name": "B hizmeti", "quantity": "1", "unit": "adet", "unit_price": "10", "discount_percent": "0", "tax_rate": "20"},
			{"name": "A hizmeti", "quantity": "1", "unit": "adet", "unit_price": "20", "discount_percent": "0", "tax_rate": "20"}
		],
		"discount_percent": "0"
	}`)
	defer resp.Body.Close()

	var out dto.PreviewInvoiceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Lines, 2)
	assert.Equal(t, "B hizmeti", out.Lines[0].Name)
	assert.Equal(t, "A hizmeti", out.Lines[1].Name)
}

// Bozuk gövde 400 INVALID_BODY döner.
func TestPreview_BozukGovde_400Doner(t *testing.T) {
	app := buildPreviewApp()
	resp := doPreview(t, app, `{bozuk json`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_BODY")
}
