package repository

import (
	"time"

	"github.com/chemasport/catalogo-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia de ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// ListByRange devuelve las ventas con fecha en [from, to), más recientes primero.
	ListByRange(from, to time.Time) ([]*entity.Sale, error)
}
