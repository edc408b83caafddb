package db

import (
	"context"
	"fmt"
	"time"

	"JerseyStoreAPI/configs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool and pings it, retrying per config.
func Connect(ctx context.Context, cfg *configs.Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&connect_timeout=%d",
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Host,
		cfg.DB.Port,
		cfg.DB.Name,
		int(cfg.DB.ConnectTimeout.Seconds()),
	)

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection config: %w", err)
	}

	var pool *pgxpool.Pool
	retryDelay := 5 * time.Second

	for i := 0; i < cfg.DB.Retries; i++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("context cancelled during retries: %w", err)
		}

		pool, err = openPool(ctx, poolCfg)
		if err == nil {
			return pool, nil
		}

		select {
		case <-time.After(retryDelay):
		case <-ctx.Done():
			return nil, fmt.Errorf("connection cancelled during retry delay: %w", ctx.Err())
		}
	}
	return nil, fmt.Errorf("failed to connect to database after %d retries: %w", cfg.DB.Retries, err)
}

func openPool(ctx context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error) {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open pool: %w", err)
	}
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping failed: %w", err)
	}
	return pool, nil
}
