package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	appbilling "github.com/kullanici/fatura-pro/internal/application/billing"
	"github.com/kullanici/fatura-pro/internal/application/usecase"
	infrapdf "github.com/kullanici/fatura-pro/internal/infrastructure/pdf"
	"github.com/kullanici/fatura-pro/internal/infrastructure/postgres"
	httpRouter "github.com/kullanici/fatura-pro/internal/interfaces/http"
	"github.com/kullanici/fatura-pro/pkg/config"
	"github.com/kullanici/fatura-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("yapılandırma yüklenemedi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("uygulama başlatılıyor")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL bağlantısı")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo, usecase.CompanyDefaults{
		InvoiceSeries:  cfg.Billing.DefaultSeries,
		CurrencyCode:   cfg.Billing.DefaultCurrency,
		DefaultTaxRate: decimal.NewFromInt(int64(cfg.Billing.DefaultTaxRate)),
	})
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	invoiceUC := appbilling.NewInvoiceUseCase(invoiceRepo, customerRepo, companyRepo, txRunner)

	// PDF: faturanın yazdırılabilir görüntüsü
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := appbilling.NewPDFUseCase(invoiceRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Fatura Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:  companyUC,
		CustomerUC: customerUC,
		ProductUC:  productUC,
		InvoiceUC:  invoiceUC,
		PDFUC:      pdfUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP sunucusu sonlandı")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("kapatma sinyali alındı, sunucu kapatılıyor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("sunucu kapatma")
	}

	log.Info().Msg("uygulama durduruldu")
}
