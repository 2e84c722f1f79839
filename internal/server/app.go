// Package server assembles and runs the authenticator server: storage
// backend, migrations, user service and the gRPC endpoint.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/authshell/internal/logging"
	"github.com/dmitrijs2005/authshell/internal/server/config"
	"github.com/dmitrijs2005/authshell/internal/server/models"
	"github.com/dmitrijs2005/authshell/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/authshell/internal/server/services"

	gs "github.com/dmitrijs2005/authshell/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
}

// openDB is a seam for tests.
var openDB = func(dsn string) (*sql.DB, error) {
	return sql.Open("pgx", dsn)
}

// NewApp prepares storage and services. Without a DSN accounts live in
// memory and vanish on restart.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	var (
		db  *sql.DB
		rm  repomanager.RepositoryManager
		err error
	)

	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "No database configured, accounts are kept in memory")
		rm = repomanager.NewMemoryRepositoryManager()
	} else {
		db, err = openDB(c.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		rm = repomanager.NewPostgresRepositoryManager()
	}

	if err := rm.RunMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm, c, logger)

	if c.SeedAdmin {
		admin := &models.User{
			UserName:      "admin",
			Email:         "admin@example.com",
			FirstName:     "Admin",
			LastName:      "User",
			Role:          models.RoleAdmin,
			EmailVerified: true,
		}
		if err := us.EnsureUser(ctx, admin, "password"); err != nil {
			closeDB(db)
			return nil, fmt.Errorf("seed error: %w", err)
		}
	}

	return &App{config: c, logger: logger, db: db, userService: us}, nil
}

func closeDB(db *sql.DB) {
	if db != nil {
		_ = db.Close()
	}
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM/SIGQUIT arrives.
func (app *App) Run(ctx context.Context) error {

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")

	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.config.SecretKey)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}

func (app *App) Close() error {
	if app.db == nil {
		return nil
	}
	return app.db.Close()
}
