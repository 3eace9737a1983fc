package repository

import "github.com/chemasport/catalogo-api/internal/domain/entity"

// ProductFilter criterios del listado paginado.
type ProductFilter struct {
	Query string // substring case-insensitive sobre name
	Type  string // match exacto
	Limit int
	Offset int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error
	List(filter ProductFilter) ([]*entity.Product, error)
	Count(filter ProductFilter) (int, error)
	CountAll() (int, error)
}

// ProductLockRepository extiende el puerto con bloqueo de fila para el motor
// de ventas (SELECT ... FOR UPDATE dentro de una transacción).
type ProductLockRepository interface {
	ProductRepository
	GetForUpdate(id string) (*entity.Product, error)
}
