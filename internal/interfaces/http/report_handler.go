package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chemasport/catalogo-api/internal/application/sales"
	"github.com/chemasport/catalogo-api/pkg/logger"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler descarga de reportes diarios de ventas (PDF y XLSX).
type ReportHandler struct {
	reports *sales.ReportUseCase
	log     *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *sales.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{reports: reports, log: log}
}

// DailyPDF godoc
// @Summary      Reporte diario de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        date  query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200   {file}  binary
// @Router       /api/reports/sales/daily/pdf [get]
func (h *ReportHandler) DailyPDF(c *fiber.Ctx) error {
	doc, filename, err := h.reports.DailyPDF(c.Context(), c.Query("date"))
	if err != nil {
		h.log.Error().Err(err).Msg("reporte PDF")
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}

// DailyXLSX godoc
// @Summary      Reporte diario de ventas en XLSX
// @Tags         reports
// @Security     Bearer
// @Param        date  query  string  false  "YYYY-MM-DD (por defecto hoy)"
// @Success      200   {file}  binary
// @Router       /api/reports/sales/daily/xlsx [get]
func (h *ReportHandler) DailyXLSX(c *fiber.Ctx) error {
	doc, filename, err := h.reports.DailyExcel(c.Query("date"))
	if err != nil {
		h.log.Error().Err(err).Msg("reporte XLSX")
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, xlsxMIME)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(doc)
}
