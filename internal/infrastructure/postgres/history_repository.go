package postgres

import (
	"context"
	"fmt"

	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// HistoryRepo implementación del puerto HistoryRepository sobre PostgreSQL.
type HistoryRepo struct {
	q Querier
}

// NewHistoryRepository construye el adaptador de persistencia del historial.
func NewHistoryRepository(q Querier) *HistoryRepo {
	return &HistoryRepo{q: q}
}

// Create inserta una entrada de historial.
func (r *HistoryRepo) Create(entry *entity.HistoryEntry) error {
	query := `
		INSERT INTO history (id, username, action, item, date, details)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		entry.ID, entry.User, entry.Action, entry.Item, entry.Date, entry.Details,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

// List lista entradas de historial, más recientes primero.
func (r *HistoryRepo) List(limit, offset int) ([]*entity.HistoryEntry, error) {
	query := `
		SELECT id, username, action, item, date, details
		FROM history ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []*entity.HistoryEntry
	for rows.Next() {
		var e entity.HistoryEntry
		if err := rows.Scan(&e.ID, &e.User, &e.Action, &e.Item, &e.Date, &e.Details); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Count cuenta todas las entradas de historial.
func (r *HistoryRepo) Count() (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM history`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count history: %w", err)
	}
	return count, nil
}
