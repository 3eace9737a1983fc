package entity

import (
	"strings"
	"time"

	"github.com/chemasport/catalogo-api/internal/domain/inventory"
)

// Límites de longitud para campos de texto del producto.
const (
	MaxNameLen = 150
	MaxTypeLen = 40
)

// ProductImage referencia a una imagen subida al almacén remoto.
// PublicID vacío significa URL externa no gestionada (no se puede borrar remotamente).
type ProductImage struct {
	PublicID string `json:"public_id"`
	URL      string `json:"url"`
}

// Product representa una camiseta del catálogo con inventario por talla.
// Stock es visible en la tienda; Bodega es la reserva solo-admin.
type Product struct {
	ID        string
	Name      string // recortado, máx 150
	Price     int64  // pesos enteros, >= 0; decimales se truncan al validar
	Type      string // categoría libre (Player, Fan, Mujer, Niño...), máx 40
	ImageSrc  string // URL principal para cards y listados
	ImageSrc2 string // URL secundaria (hover)
	Images    []ProductImage
	Stock     inventory.Inventory
	Bodega    inventory.Inventory
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot proyección del producto para el diff de auditoría.
func (p *Product) Snapshot() inventory.Snapshot {
	return inventory.Snapshot{
		Name:   p.Name,
		Price:  p.Price,
		Type:   p.Type,
		Stock:  p.Stock.Clone(),
		Bodega: p.Bodega.Clone(),
	}
}

// Label etiqueta de presentación "nombre (tipo)" usada en el historial.
func (p *Product) Label() string {
	return p.Name + " (" + p.Type + ")"
}

// TruncateName recorta y limita un nombre al máximo permitido.
func TruncateName(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > MaxNameLen {
		s = s[:MaxNameLen]
	}
	return s
}

// TruncateType recorta y limita un tipo al máximo permitido.
func TruncateType(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > MaxTypeLen {
		s = s[:MaxTypeLen]
	}
	return s
}
