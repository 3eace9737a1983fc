package repository

import "github.com/chemasport/catalogo-api/internal/domain/entity"

// HistoryRepository puerto de persistencia del historial de auditoría.
// Solo inserta y lista: las entradas son inmutables.
type HistoryRepository interface {
	Create(entry *entity.HistoryEntry) error
	List(limit, offset int) ([]*entity.HistoryEntry, error)
	Count() (int, error)
}
