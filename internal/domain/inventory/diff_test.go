package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chemasport/catalogo-api/internal/domain/inventory"
)

func snapshot() inventory.Snapshot {
	return inventory.Snapshot{
		Name:   "Jersey A",
		Price:  45000,
		Type:   "Player",
		Stock:  inventory.Inventory{"M": 3, "L": 1},
		Bodega: inventory.Inventory{"M": 5},
	}
}

// diffProduct(p, p) debe ser vacío para cualquier snapshot.
func TestDiff_SinCambiosEsVacio(t *testing.T) {
	p := snapshot()
	assert.Empty(t, inventory.Diff(p, p))
}

// Cambiar solo el precio produce exactamente una entrada con el formato esperado.
func TestDiff_SoloPrecio(t *testing.T) {
	prev := snapshot()
	prev.Price = 1000
	next := snapshot()
	next.Price = 1200

	changes := inventory.Diff(prev, next)
	require.Len(t, changes, 1)
	assert.Equal(t, "precio: 1000 -> 1200", changes[0])
}

func TestDiff_OrdenDeCampos(t *testing.T) {
	prev := snapshot()
	next := snapshot()
	next.Name = "Jersey B"
	next.Price = 50000
	next.Type = "Fan"
	next.Stock = inventory.Inventory{"M": 7, "L": 1}
	next.Bodega = inventory.Inventory{"M": 5, "S": 2}

	changes := inventory.Diff(prev, next)
	require.Len(t, changes, 5)
	assert.Equal(t, `nombre: "Jersey A" -> "Jersey B"`, changes[0])
	assert.Equal(t, "precio: 45000 -> 50000", changes[1])
	assert.Equal(t, `tipo: "Player" -> "Fan"`, changes[2])
	// Los diffs de inventario van después de los campos escalares; dentro de
	// cada inventario el conjunto de cambios importa, no la secuencia.
	assert.Contains(t, changes[3:], "stock[M]: 3 -> 7")
	assert.Contains(t, changes[3:], "bodega[S]: 0 -> 2")
}

// Tallas ausentes cuentan como 0 en ambos lados de la unión de claves.
func TestDiffInventory_AusenteEsCero(t *testing.T) {
	prev := inventory.Inventory{"M": 2}
	next := inventory.Inventory{"L": 4}

	changes := inventory.DiffInventory("stock", prev, next)
	assert.ElementsMatch(t, []string{"stock[M]: 2 -> 0", "stock[L]: 0 -> 4"}, changes)
}

func TestDiffInventory_MismaCantidadNoEmite(t *testing.T) {
	prev := inventory.Inventory{"M": 2, "S": 0}
	next := inventory.Inventory{"M": 2}

	// S pasa de 0 explícito a ausente: cantidad efectiva idéntica.
	assert.Empty(t, inventory.DiffInventory("stock", prev, next))
}
