package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chemasport/catalogo-api/internal/application/dto"
	"github.com/chemasport/catalogo-api/internal/application/sales"
	"github.com/chemasport/catalogo-api/pkg/logger"
)

// SaleHandler maneja las peticiones HTTP de ventas.
type SaleHandler struct {
	register *sales.RegisterSaleUseCase
	reports  *sales.ReportUseCase
	log      *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(register *sales.RegisterSaleUseCase, reports *sales.ReportUseCase, log *logger.Logger) *SaleHandler {
	return &SaleHandler{register: register, reports: reports, log: log}
}

// Register godoc
// @Summary      Registrar venta (descuenta stock de la talla)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "Venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      409   {object}  dto.ErrorResponse  "Stock insuficiente"
// @Router       /api/sales [post]
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.register.RegisterSale(c.Context(), in, Actor(c, ""))
	if err != nil {
		h.log.Error().Err(err).Str("product_id", in.ProductID).Msg("registrar venta")
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Daily godoc
// @Summary      Ventas de un día calendario con su total
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200   {object}  dto.DailySalesResponse
// @Router       /api/sales/daily [get]
func (h *SaleHandler) Daily(c *fiber.Ctx) error {
	out, err := h.reports.DailySales(c.Query("date"))
	if err != nil {
		h.log.Error().Err(err).Msg("ventas del día")
		return writeError(c, err)
	}
	return c.JSON(out)
}
