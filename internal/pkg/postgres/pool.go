package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"zapshift/internal/pkg/config"
	"zapshift/pkg/logger"
	retrierconfig "zapshift/pkg/retrier"
	"zapshift/pkg/retrier/backoff_adapter"
)

const (
	maxConns        = 10
	minConns        = 2
	maxConnLifetime = time.Hour

	initialInterval = 2 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(newDsn(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = minConns
	poolCfg.MaxConnLifetime = maxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("port", cfg.Port),
		logger.NewField("db", cfg.DBName),
	)

	err = pingDatabase(ctx, dbLog, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return pool, nil
}

// newDsn собирает URL подключения, экранируя учетные данные.
func newDsn(cfg *config.Database) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return dsn.String()
}

func pingDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	var attempt uint64
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		Notify: func(err error, wait time.Duration) {
			log.Warn("database ping failed, retrying",
				logger.NewField("attempt", attempt),
				logger.NewField("wait", wait),
				logger.NewField("error", err),
			)
		},
	})

	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return pool.Ping(ctx)
	})
	if err != nil {
		log.Error("database connection failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established", logger.NewField("attempts", attempt))
	return nil
}
