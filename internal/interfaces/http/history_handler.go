package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chemasport/catalogo-api/internal/application/dto"
	"github.com/chemasport/catalogo-api/internal/application/usecase"
	"github.com/chemasport/catalogo-api/pkg/logger"
)

// HistoryHandler maneja las peticiones HTTP del historial de auditoría.
type HistoryHandler struct {
	uc  *usecase.HistoryUseCase
	log *logger.Logger
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *usecase.HistoryUseCase, log *logger.Logger) *HistoryHandler {
	return &HistoryHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar historial (más reciente primero)
// @Tags         history
// @Security     Bearer
// @Produce      json
// @Param        page   query  int  false  "Página"            default(1)
// @Param        limit  query  int  false  "Tamaño de página"  default(20)
// @Success      200    {object}  dto.HistoryListResponse
// @Router       /api/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	page, limit := dto.ClampPage(c.QueryInt("page", 1), c.QueryInt("limit", 20))
	out, err := h.uc.List(page, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("listar historial")
		return writeError(c, err)
	}
	return c.JSON(out)
}
