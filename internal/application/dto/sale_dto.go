package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chemasport/catalogo-api/internal/domain/entity"
)

// RegisterSaleRequest entrada para registrar una venta.
type RegisterSaleRequest struct {
	ProductID string `json:"productId"`
	Talla     string `json:"talla"`
	Cantidad  int    `json:"cantidad"`
	Jugador   string `json:"jugador"`
	Equipo    string `json:"equipo"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"productId"`
	Item      string          `json:"item"`
	Talla     string          `json:"talla"`
	Cantidad  int             `json:"cantidad"`
	Precio    decimal.Decimal `json:"precio"`
	Total     decimal.Decimal `json:"total"`
	Jugador   string          `json:"jugador,omitempty"`
	Equipo    string          `json:"equipo,omitempty"`
	Fecha     time.Time       `json:"fecha"`
}

// DailySalesResponse ventas de un día calendario y su total.
type DailySalesResponse struct {
	Date   string          `json:"date"` // YYYY-MM-DD
	Ventas []SaleResponse  `json:"ventas"`
	Total  decimal.Decimal `json:"total"`
}

// ToSaleResponse mapea la entidad a su representación JSON.
func ToSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		Item:      s.Item,
		Talla:     s.Talla,
		Cantidad:  s.Cantidad,
		Precio:    s.Precio,
		Total:     s.Total,
		Jugador:   s.Jugador,
		Equipo:    s.Equipo,
		Fecha:     s.Fecha,
	}
}
