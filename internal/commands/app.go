package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
	"github.com/ledgerline/ledgerline/internal/core/services"
	"github.com/ledgerline/ledgerline/internal/platform/config"
	"github.com/ledgerline/ledgerline/internal/repositories/database/pgsql"
	"github.com/ledgerline/ledgerline/pkg/database"
)

// app bundles the shared runtime every subcommand needs: config, logger,
// connection pool and the service container.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	pool     *pgxpool.Pool
	services *portssvc.ServiceContainer
}

// newApp loads configuration, connects to the database, applies pending
// migrations and wires the service container.
func newApp(ctx context.Context, logger *slog.Logger) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		database.ClosePgxPool(pool)
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	repos := pgsql.NewRepositoryProvider(pool)

	return &app{
		cfg:      cfg,
		logger:   logger,
		pool:     pool,
		services: services.NewContainer(repos),
	}, nil
}

func (a *app) Close() {
	database.ClosePgxPool(a.pool)
}
