package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemasport/catalogo-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Sanitize — normalización del mapa talla -> cantidad
// ──────────────────────────────────────────────────────────────────────────────

func TestSanitize_DescartaTallasDesconocidas(t *testing.T) {
	got := inventory.Sanitize(map[string]any{
		"M":  float64(3),
		"ZZ": float64(5),
		"xl": float64(2), // el catálogo es sensible a mayúsculas
	})

	assert.Equal(t, inventory.Inventory{"M": 3}, got,
		"solo deben sobrevivir tallas del catálogo")
}

func TestSanitize_CoercionaValores(t *testing.T) {
	got := inventory.Sanitize(map[string]any{
		"S":   7.9,          // trunca hacia cero
		"M":   float64(-4),  // negativo -> 0
		"L":   "12",         // string numérico
		"XL":  "doce",       // no numérico -> 0
		"XXL": nil,          // nil -> 0
		"16":  true,         // bool -> 1 (Number(true) en el front original)
	})

	want := inventory.Inventory{"S": 7, "M": 0, "L": 12, "XL": 0, "XXL": 0, "16": 1}
	assert.Equal(t, want, got)
}

func TestSanitize_EntradaVaciaONil(t *testing.T) {
	assert.Empty(t, inventory.Sanitize(nil), "nil degrada a inventario vacío")
	assert.Empty(t, inventory.Sanitize(map[string]any{}))
}

// Sanitize debe ser idempotente: sanitizar un inventario ya limpio no lo cambia.
func TestSanitize_Idempotente(t *testing.T) {
	first := inventory.Sanitize(map[string]any{"M": 3.7, "ZZ": float64(9), "28": float64(1)})

	raw := make(map[string]any, len(first))
	for size, qty := range first {
		raw[size] = float64(qty)
	}
	second := inventory.Sanitize(raw)

	assert.Equal(t, first, second, "sanitize(sanitize(x)) debe ser igual a sanitize(x)")
}

// Propiedad general: toda salida de Sanitize pasa Validate.
func TestSanitize_SalidaSiempreValida(t *testing.T) {
	inputs := []map[string]any{
		{"S": -1.5, "banana": float64(10)},
		{"3XL": "99.9", "4XL": []any{"basura"}},
		{"20": float64(0), "22": -0.0},
		nil,
	}
	for _, raw := range inputs {
		clean := inventory.Sanitize(raw)
		require.NoError(t, clean.Validate("stock"))
		for size, qty := range clean {
			assert.True(t, inventory.IsValidSize(size))
			assert.GreaterOrEqual(t, qty, 0)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate — contrato de la capa de persistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_RechazaTallaInvalida(t *testing.T) {
	inv := inventory.Inventory{"M": 2, "ZZ": 1}

	err := inv.Validate("bodega")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bodega", "el error debe nombrar el campo rechazado")
	assert.Contains(t, err.Error(), "ZZ")
}

func TestValidate_RechazaCantidadNegativa(t *testing.T) {
	inv := inventory.Inventory{"L": -3}

	err := inv.Validate("stock")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stock")
}

func TestValidate_AceptaInventarioLimpio(t *testing.T) {
	inv := inventory.Inventory{"S": 0, "M": 10, "28": 4}
	assert.NoError(t, inv.Validate("stock"))
}

func TestQty_TallaAusenteEsCero(t *testing.T) {
	var inv inventory.Inventory
	assert.Equal(t, 0, inv.Qty("M"))
	assert.Equal(t, 0, inventory.Inventory{"S": 2}.Qty("M"))
}
