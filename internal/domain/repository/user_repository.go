package repository

import "github.com/chemasport/catalogo-api/internal/domain/entity"

// UserRepository puerto de persistencia de usuarios administradores.
// FindByUsername devuelve (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	FindByUsername(username string) (*entity.User, error)
	DeleteByUsername(username string) error
}
