package bootstrap

import (
	"context"
	"log/slog"

	"grocery-pool/internal/infra/db"
	"grocery-pool/internal/infra/migrate"
	"grocery-pool/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
	fx.Invoke(RunMigrations),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// RunMigrations takes the pool so that it runs after the connection check.
func RunMigrations(_ *pgxpool.Pool, cfg config.Config) error {
	if !cfg.DB.AutoMigrate {
		return nil
	}
	if err := migrate.Up(cfg.DB.BuildDSN()); err != nil {
		return err
	}
	slog.Info("database migrations applied")
	return nil
}
