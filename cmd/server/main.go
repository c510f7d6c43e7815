// Command server runs the user account HTTP service: registration, login,
// token-scoped account updates and the address/phone sub-resources, backed
// by PostgreSQL.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Bauumgarten/usuario/internal/config"
	"github.com/Bauumgarten/usuario/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	ctx := context.Background()

	db, err := openDatabase(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return err
	}
	log.Info("database migrations applied")

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return err
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
