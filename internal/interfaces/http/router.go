package http

import (
	"github.com/gofiber/fiber/v2"

	appbilling "github.com/kullanici/fatura-pro/internal/application/billing"
	"github.com/kullanici/fatura-pro/internal/application/usecase"
)

// RouterDeps router bağımlılıkları.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	CustomerUC *usecase.CustomerUseCase
	ProductUC  *usecase.ProductUseCase
	InvoiceUC  *appbilling.InvoiceUseCase
	PDFUC      *appbilling.PDFUseCase
}

// Router API rotalarını kaydeder.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Firma profili (tekil kaynak)
	company := api.Group("/company")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company.Get("/", companyHandler.Get)
	company.Put("/", companyHandler.Update)

	// Müşteri kataloğu
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Ürün/hizmet kataloğu
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Faturalar
	invoices := api.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/preview", invoiceHandler.Preview)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Delete("/:id", invoiceHandler.Delete)
	invoices.Post("/:id/finalize", invoiceHandler.Finalize)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
}
