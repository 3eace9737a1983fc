package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Límites para una venta individual.
const (
	MinSaleQty = 1
	MaxSaleQty = 100
)

// Sale venta de una camiseta: descuenta stock de la talla vendida dentro de
// la misma transacción que la inserta (sin carrera lectura-escritura).
type Sale struct {
	ID        string
	ProductID string
	Item      string // etiqueta "nombre (tipo)" al momento de la venta
	Talla     string
	Cantidad  int
	Precio    decimal.Decimal // precio unitario al momento de la venta
	Total     decimal.Decimal // Precio * Cantidad
	Jugador   string
	Equipo    string
	Fecha     time.Time
	CreatedBy string
}
