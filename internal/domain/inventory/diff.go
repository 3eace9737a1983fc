package inventory

import (
	"fmt"
	"sort"
)

// Snapshot campos de un producto que participan en el diff de auditoría.
type Snapshot struct {
	Name   string
	Price  int64
	Type   string
	Stock  Inventory
	Bodega Inventory
}

// Diff produce la lista de cambios legibles entre dos snapshots, en el orden
// nombre, precio, tipo y después los diffs por talla de stock y bodega.
// Lista vacía significa que no hay nada que auditar.
func Diff(prev, next Snapshot) []string {
	var changes []string
	if prev.Name != next.Name {
		changes = append(changes, fmt.Sprintf("nombre: %q -> %q", prev.Name, next.Name))
	}
	if prev.Price != next.Price {
		changes = append(changes, fmt.Sprintf("precio: %d -> %d", prev.Price, next.Price))
	}
	if prev.Type != next.Type {
		changes = append(changes, fmt.Sprintf("tipo: %q -> %q", prev.Type, next.Type))
	}
	changes = append(changes, DiffInventory("stock", prev.Stock, next.Stock)...)
	changes = append(changes, DiffInventory("bodega", prev.Bodega, next.Bodega)...)
	return changes
}

// DiffInventory emite "label[talla]: a -> b" por cada talla de la unión de
// claves cuya cantidad efectiva cambió (ausente cuenta como 0). Las tallas se
// recorren en el orden del catálogo y luego las desconocidas ordenadas, para
// que la salida sea estable.
func DiffInventory(label string, prev, next Inventory) []string {
	union := make(map[string]struct{}, len(prev)+len(next))
	for size := range prev {
		union[size] = struct{}{}
	}
	for size := range next {
		union[size] = struct{}{}
	}

	var out []string
	emit := func(size string) {
		a := prev.Qty(size)
		b := next.Qty(size)
		if a != b {
			out = append(out, fmt.Sprintf("%s[%s]: %d -> %d", label, size, a, b))
		}
	}

	for _, size := range AllSizes {
		if _, ok := union[size]; ok {
			emit(size)
			delete(union, size)
		}
	}
	// Tallas fuera de catálogo solo aparecen en datos históricos previos a la
	// validación; se reportan igualmente.
	rest := make([]string, 0, len(union))
	for size := range union {
		rest = append(rest, size)
	}
	sort.Strings(rest)
	for _, size := range rest {
		emit(size)
	}
	return out
}
