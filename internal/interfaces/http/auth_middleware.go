package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/chemasport/catalogo-api/internal/application/dto"
	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalSuper    = "is_superuser"
	LocalRoles    = "roles"
)

// AuthMiddleware valida el Bearer Token JWT y extrae los claims a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		setClaims(c, claims)
		return c.Next()
	}
}

// OptionalAuth extrae los claims si viene un Bearer Token válido; si no, sigue
// sin autenticar. Lo usan las rutas donde el token solo aporta atribución.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if claims, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1])); err == nil {
				setClaims(c, claims)
			}
		}
		return c.Next()
	}
}

// RequireRole autoriza la mutación solo a usuarios con el rol dado.
// El superusuario pasa siempre. Debe ir después de AuthMiddleware.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if isSuper(c) || hasRole(c, role) {
			return c.Next()
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tienes el rol: " + role})
	}
}

func setClaims(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalUsername, claims.Username)
	c.Locals(LocalSuper, claims.Super)
	c.Locals(LocalRoles, claims.Roles)
}

// GetUsername devuelve el username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

func isSuper(c *fiber.Ctx) bool {
	v, _ := c.Locals(LocalSuper).(bool)
	return v
}

func hasRole(c *fiber.Ctx, role string) bool {
	roles, _ := c.Locals(LocalRoles).([]string)
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// Actor resuelve quién ejecuta la acción para el historial:
// username del token → header X-User → campo user del body → "Sistema".
func Actor(c *fiber.Ctx, bodyUser string) string {
	if u := GetUsername(c); u != "" {
		return u
	}
	if u := strings.TrimSpace(c.Get("X-User")); u != "" {
		return u
	}
	if u := strings.TrimSpace(bodyUser); u != "" {
		return u
	}
	return entity.SystemActor
}
