package http

import (
	"github.com/gofiber/fiber/v2"

	appbilling "github.com/kullanici/fatura-pro/internal/application/billing"
	"github.com/kullanici/fatura-pro/internal/application/dto"
)

// InvoiceHandler fatura yaşam döngüsü isteklerini karşılar: anlık hesap,
// taslak kaydı, kesinleştirme, sorgular ve PDF çıktısı.
type InvoiceHandler struct {
	uc    *appbilling.InvoiceUseCase
	pdfUC *appbilling.PDFUseCase
}

// NewInvoiceHandler handler'ı kurar.
func NewInvoiceHandler(uc *appbilling.InvoiceUseCase, pdfUC *appbilling.PDFUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdfUC: pdfUC}
}

// Preview godoc
// @Summary      Toplamları kaydetmeden hesapla
// @Description  UI her alan düzenlemesinde çağırır; hesap eşzamanlıdır ve yan etkisizdir.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PreviewInvoiceRequest  true  "Satırlar ve belge iskontosu"
// @Success      200   {object}  dto.PreviewInvoiceResponse
// @Router       /api/invoices/preview [post]
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	return c.JSON(h.uc.Preview(in))
}

// Create godoc
// @Summary      Taslak fatura oluştur
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveInvoiceRequest  true  "Fatura taslağı"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.SaveInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateDraft(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Taslak faturayı güncelle
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Fatura ID"
// @Param        body  body  dto.SaveInvoiceRequest  true  "Fatura taslağı"
// @Success      200   {object}  dto.InvoiceResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [put]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.SaveInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateDraft(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Finalize godoc
// @Summary      Taslağı kesinleştir
// @Description  Doğrulama listesi boş değilse hiçbir durum değişmez ve liste 422 ile döner.
// @Tags         invoices
// @Produce      json
// @Param        id   path  string  true  "Fatura ID"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ValidationErrorResponse
// @Router       /api/invoices/{id}/finalize [post]
func (h *InvoiceHandler) Finalize(c *fiber.Ctx) error {
	out, err := h.uc.Finalize(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Faturayı getir
// @Tags         invoices
// @Produce      json
// @Param        id   path  string  true  "Fatura ID"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Faturaları listele
// @Tags         invoices
// @Produce      json
// @Param        status  query  string  false  "draft | finalized"
// @Param        limit   query  int     false  "Limit"   default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Context(), c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Taslak faturayı sil
// @Tags         invoices
// @Param        id  path  string  true  "Fatura ID"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [delete]
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PDF godoc
// @Summary      Faturanın PDF çıktısını üret
// @Tags         invoices
// @Produce      application/pdf
// @Param        id  path  string  true  "Fatura ID"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	data, err := h.pdfUC.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="fatura.pdf"`)
	return c.Send(data)
}
