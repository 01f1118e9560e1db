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

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/billing"
	"github.com/jhoicas/Gestion-api/internal/application/docgen"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/assets"
	infrapdf "github.com/jhoicas/Gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/profile"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/Gestion-api/internal/interfaces/http"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/jwt"
	"github.com/jhoicas/Gestion-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	jwtSvc := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)
	authUC := auth.NewUseCase(userRepo, companyRepo, jwtSvc)

	profileStore := profile.NewFileStore(cfg.Document.ProfileDir, log.Component("profile"))
	companyUC := usecase.NewCompanyUseCase(companyRepo, profileStore)
	clientUC := usecase.NewClientUseCase(clientRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo, clientRepo, "PED")

	invoiceUC := billing.NewInvoiceUseCase(
		invoiceRepo, orderRepo, txRunner,
		cfg.Document.InvoicePrefix, cfg.Document.InvoiceNetDays,
	)
	exportUC := billing.NewExportUseCase(
		invoiceRepo, companyRepo, clientRepo,
		xmlexport.NewBuilder("EUR"),
	)

	// Generación de documentos: renderer gofpdf + logo remoto + perfil de empresa
	logoFetcher := assets.NewHTTPLogoFetcher(
		time.Duration(cfg.Document.FetchTimeoutSec)*time.Second,
		log.Component("assets"),
	)
	documentUC := docgen.NewDocumentUseCase(
		invoiceRepo, orderRepo, clientRepo,
		postgres.NewCatalogLookup(productRepo),
		profileStore,
		logoFetcher,
		infrapdf.NewInvoiceRenderer(cfg.Document.Currency),
		cfg.Document.DefaultLogoURL,
	)

	dashboardUC := usecase.NewDashboardUseCase(
		analyticsRepo, companyRepo,
		infrapdf.NewMarotoReportGenerator(cfg.Document.Currency),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestión PYME API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		ClientUC:    clientUC,
		ProductUC:   productUC,
		OrderUC:     orderUC,
		InvoiceUC:   invoiceUC,
		ExportUC:    exportUC,
		DocumentUC:  documentUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
