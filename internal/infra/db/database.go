package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sport-rental/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const pingTimeout = 5 * time.Second

// Connect opens a pool and pings it once. There is no retry; a failed ping is
// reported through the logger and returned to the caller.
func Connect(cfg config.DBConfig, logger *slog.Logger) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		logger.Error("Database configuration is invalid", "host", cfg.Host, "database", cfg.DBName, "error", err)
		return nil, nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		logger.Error("Database connection failed", "host", cfg.Host, "database", cfg.DBName, "error", err)
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Error("Database connection failed", "host", cfg.Host, "database", cfg.DBName, "error", err)
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Database connection established", "host", cfg.Host, "port", cfg.Port, "database", cfg.DBName)

	cleanup := func() {
		pool.Close()
		logger.Info("Database connection closed")
	}

	return pool, cleanup, nil
}
