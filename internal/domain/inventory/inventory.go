package inventory

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/chemasport/catalogo-api/internal/domain"
)

// Inventory cantidad disponible por talla. Se usa tanto para el stock visible
// en la tienda como para la bodega (reserva solo-admin).
type Inventory map[string]int

// Sanitize normaliza un mapa talla -> cantidad arbitrario al catálogo fijo:
// descarta tallas desconocidas y coerciona cada valor a max(0, trunc(n)),
// tratando valores no numéricos como 0. Nunca falla: entrada mal formada
// degrada a un inventario vacío, no a un error de la petición.
func Sanitize(raw map[string]any) Inventory {
	clean := Inventory{}
	for size, qty := range raw {
		if !IsValidSize(size) {
			continue
		}
		n := toNumber(qty)
		if math.IsNaN(n) || math.IsInf(n, 0) {
			n = 0
		}
		clean[size] = int(math.Max(0, math.Trunc(n)))
	}
	return clean
}

// toNumber imita la coerción Number(x) || 0 del front original.
func toNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// Validate verifica el contrato de persistencia: toda clave pertenece al
// catálogo de tallas y toda cantidad es un entero no negativo. El error
// resultante nombra el campo (stock o bodega) que se rechaza.
func (inv Inventory) Validate(field string) error {
	for size, qty := range inv {
		if !IsValidSize(size) {
			return domain.NewValidationError(field, "talla inválida: "+size)
		}
		if qty < 0 {
			return domain.NewValidationError(field, "cantidad negativa para talla "+size)
		}
	}
	return nil
}

// Clone copia el inventario (los snapshots previos no deben compartir mapa).
func (inv Inventory) Clone() Inventory {
	if inv == nil {
		return nil
	}
	out := make(Inventory, len(inv))
	for size, qty := range inv {
		out[size] = qty
	}
	return out
}

// Qty devuelve la cantidad de una talla, 0 si no está presente.
func (inv Inventory) Qty(size string) int {
	if inv == nil {
		return 0
	}
	return inv[size]
}
