package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resort-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect builds a pool from DATASTORE_URL with DATASTORE_KEY as the
// password. Connections are opened lazily; a failed ping is logged, not
// returned, so the process still starts against an unreachable datastore.
func Connect(ctx context.Context, cfg config.DatastoreConfig, logger *slog.Logger) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse datastore url: %w", err)
	}
	poolCfg.ConnConfig.Password = cfg.Key
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create datastore pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		logger.Warn("datastore ping failed; continuing with lazy connections",
			slog.String("error", err.Error()))
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}
