package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kullanici/fatura-pro/internal/application/dto"
	"github.com/kullanici/fatura-pro/internal/application/usecase"
)

// CompanyHandler firma profili (ayarlar) isteklerini karşılar. Tek kullanıcılı
// kurulumda tek profil vardır; koleksiyon yerine tekil kaynak sunulur.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler handler'ı kurar.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Get godoc
// @Summary      Firma profilini getir
// @Description  Profil henüz kaydedilmemişse varsayılanlarla doldurulmuş, ID'siz bir profil döner.
// @Tags         company
// @Produce      json
// @Success      200  {object}  dto.CompanyResponse
// @Router       /api/company [get]
func (h *CompanyHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Firma profilini kaydet (ilk kayıtta oluşturur)
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateCompanyRequest  true  "Firma bilgileri"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/company [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
