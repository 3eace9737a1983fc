package entity

import "time"

// Roles de administración sobre el catálogo.
const (
	RoleAdd    = "add"
	RoleEdit   = "edit"
	RoleDelete = "delete"
)

// User usuario administrador de la tienda.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	IsSuperUser  bool
	Roles        []string // subconjunto de {add, edit, delete}
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole indica si el usuario puede ejecutar la acción. Superusuario siempre puede.
func (u *User) HasRole(role string) bool {
	if u.IsSuperUser {
		return true
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
