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

	"github.com/chemasport/catalogo-api/internal/application/audit"
	"github.com/chemasport/catalogo-api/internal/application/auth"
	"github.com/chemasport/catalogo-api/internal/application/sales"
	"github.com/chemasport/catalogo-api/internal/application/usecase"
	"github.com/chemasport/catalogo-api/internal/infrastructure/cloudinaryimg"
	"github.com/chemasport/catalogo-api/internal/infrastructure/excel"
	infrapdf "github.com/chemasport/catalogo-api/internal/infrastructure/pdf"
	"github.com/chemasport/catalogo-api/internal/infrastructure/postgres"
	httpRouter "github.com/chemasport/catalogo-api/internal/interfaces/http"
	"github.com/chemasport/catalogo-api/pkg/config"
	"github.com/chemasport/catalogo-api/pkg/logger"
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

	imageStore, err := cloudinaryimg.New(cfg.Cloudinary)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar Cloudinary")
	}

	productRepo := postgres.NewProductRepository(pool)
	historyRepo := postgres.NewHistoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := audit.NewRecorder(historyRepo, log)
	productUC := usecase.NewProductUseCase(productRepo, imageStore, recorder, log)
	historyUC := usecase.NewHistoryUseCase(historyRepo)
	registerSaleUC := sales.NewRegisterSaleUseCase(txRunner, recorder)
	reportsUC := sales.NewReportUseCase(saleRepo, infrapdf.NewMarotoPDFGenerator(), excel.NewDailyReportExporter())
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Chema Sport API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:    productUC,
		HistoryUC:    historyUC,
		AuthUC:       authUC,
		RegisterSale: registerSaleUC,
		Reports:      reportsUC,
		JWTSecret:    cfg.JWT.Secret,
		Log:          log,
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
