package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chemasport/catalogo-api/internal/application/auth"
	"github.com/chemasport/catalogo-api/internal/application/sales"
	"github.com/chemasport/catalogo-api/internal/application/usecase"
	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	HistoryUC    *usecase.HistoryUseCase
	AuthUC       *auth.AuthUseCase
	RegisterSale *sales.RegisterSaleUseCase
	Reports      *sales.ReportUseCase
	JWTSecret    string
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Products: catálogo y health públicos; mutaciones por rol.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.Log)
	products.Get("/health", productHandler.Health)
	products.Get("/", productHandler.List)
	products.Post("/", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdd), productHandler.Create)
	products.Put("/:id", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleEdit), productHandler.Update)
	products.Delete("/:id", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleDelete), productHandler.Delete)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Historial (protegido)
	historyHandler := NewHistoryHandler(deps.HistoryUC, deps.Log)
	protected.Get("/history", historyHandler.List)

	// Ventas (protegido)
	saleHandler := NewSaleHandler(deps.RegisterSale, deps.Reports, deps.Log)
	protected.Post("/sales", saleHandler.Register)
	protected.Get("/sales/daily", saleHandler.Daily)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.Reports, deps.Log)
	protected.Get("/reports/sales/daily/pdf", reportHandler.DailyPDF)
	protected.Get("/reports/sales/daily/xlsx", reportHandler.DailyXLSX)
}
