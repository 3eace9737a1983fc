// Comando seed_admin: crea (o recrea) el superusuario administrador.
// Uso: SEED_ADMIN_USERNAME=admin SEED_ADMIN_PASSWORD=... go run ./cmd/seed_admin
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/chemasport/catalogo-api/internal/domain/entity"
	"github.com/chemasport/catalogo-api/internal/infrastructure/postgres"
	"github.com/chemasport/catalogo-api/pkg/config"
	"github.com/chemasport/catalogo-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	username := os.Getenv("SEED_ADMIN_USERNAME")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Fatal().Msg("SEED_ADMIN_USERNAME y SEED_ADMIN_PASSWORD son requeridos")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear contraseña")
	}

	userRepo := postgres.NewUserRepository(pool)

	// Recrear desde cero: si ya existe se elimina y se vuelve a insertar.
	if err := userRepo.DeleteByUsername(username); err != nil {
		log.Fatal().Err(err).Msg("eliminar superusuario previo")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		IsSuperUser:  true,
		Roles:        []string{entity.RoleAdd, entity.RoleEdit, entity.RoleDelete},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(user); err != nil {
		log.Fatal().Err(err).Msg("crear superusuario")
	}

	log.Info().Str("username", username).Msg("superusuario listo")
}
