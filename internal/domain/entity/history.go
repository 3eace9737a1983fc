package entity

import "time"

// Acciones registradas en el historial.
const (
	ActionCreated = "creó producto"
	ActionUpdated = "actualizó producto"
	ActionDeleted = "eliminó producto"
	ActionSale    = "registró venta"
)

// SystemActor etiqueta usada cuando no se puede atribuir el cambio a nadie.
const SystemActor = "Sistema"

// HistoryEntry registro inmutable de auditoría. No guarda FK al producto:
// solo la etiqueta "nombre (tipo)" vigente al momento del cambio, por lo que
// sobrevive a la eliminación del producto.
type HistoryEntry struct {
	ID      string
	User    string // actor resuelto (token, header, body o Sistema)
	Action  string
	Item    string // etiqueta de presentación del producto
	Date    time.Time
	Details string // resumen legible del cambio (diff unido con " | ")
}
