package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia de ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, item, talla, cantidad, precio, total, jugador, equipo, fecha, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.Item, sale.Talla, sale.Cantidad,
		sale.Precio, sale.Total, sale.Jugador, sale.Equipo, sale.Fecha, sale.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListByRange lista las ventas con fecha en [from, to), más recientes primero.
func (r *SaleRepo) ListByRange(from, to time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT id, product_id, item, talla, cantidad, precio, total, jugador, equipo, fecha, created_by
		FROM sales WHERE fecha >= $1 AND fecha < $2 ORDER BY fecha DESC`
	rows, err := r.q.Query(context.Background(), query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.Item, &s.Talla, &s.Cantidad,
			&s.Precio, &s.Total, &s.Jugador, &s.Equipo, &s.Fecha, &s.CreatedBy,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, &s)
	}
	return sales, rows.Err()
}
