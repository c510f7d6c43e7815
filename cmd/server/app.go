package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Bauumgarten/usuario/internal/config"
	"github.com/Bauumgarten/usuario/internal/platform/postgres"
	"github.com/Bauumgarten/usuario/internal/service"
	"github.com/Bauumgarten/usuario/internal/service/auth"
	"github.com/Bauumgarten/usuario/internal/store"
)

// application holds the assembled dependencies of the running server.
// Everything is wired here once at startup; no component reaches for
// globals.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore    store.UserStore
	addressStore store.AddressStore
	phoneStore   store.PhoneStore

	jwtService auth.JWTService
	hasher     auth.PasswordHasher

	userService    *service.UserService
	addressService *service.AddressService
	phoneService   *service.PhoneService
}

// newApplication wires stores, auth collaborators and services on top of
// the given database connection.
func newApplication(cfg *config.Config, log *slog.Logger, db *sql.DB) (*application, error) {
	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	userStore := postgres.NewPostgresUserStore(db, log)
	addressStore := postgres.NewPostgresAddressStore(db, log)
	phoneStore := postgres.NewPostgresPhoneStore(db, log)

	identity := service.NewIdentityResolver(jwtService, userStore, log)
	merger := service.NewMerger(hasher)

	return &application{
		config:         cfg,
		logger:         log,
		db:             db,
		userStore:      userStore,
		addressStore:   addressStore,
		phoneStore:     phoneStore,
		jwtService:     jwtService,
		hasher:         hasher,
		userService:    service.NewUserService(userStore, hasher, identity, merger, log),
		addressService: service.NewAddressService(addressStore, identity, merger, log),
		phoneService:   service.NewPhoneService(phoneStore, identity, merger, log),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", "error", err)
		}
	}
}
