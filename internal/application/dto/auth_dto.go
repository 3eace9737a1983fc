package dto

// LoginRequest credenciales del administrador.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse datos públicos del usuario autenticado (sin hash).
type UserResponse struct {
	ID          string   `json:"id"`
	Username    string   `json:"username"`
	IsSuperUser bool     `json:"isSuperUser"`
	Roles       []string `json:"roles"`
}

// LoginResponse token emitido y usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
