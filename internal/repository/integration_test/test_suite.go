package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"zapshift/internal/pkg/config"
	"zapshift/internal/pkg/migrations"
	"zapshift/internal/pkg/postgres"
	"zapshift/pkg/logger/zap_adapter"
	"zapshift/pkg/querier"
	"zapshift/pkg/tx"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	setupOnce       sync.Once
)

func setup() {
	setupOnce.Do(func() {
		// godotenv.Load(.env.test) не вызываем, переменные задает окружение запуска
		cfg := &config.Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		}

		ctx := context.Background()

		zapLogger, err := zap_adapter.NewZapAdapter("warn")
		if err != nil {
			log.Fatalf("failed to initialize logger: %v", err)
		}

		pool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}

		err = migrations.Up(ctx, zapLogger, pool)
		if err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}

		poolInstance = pool
		querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
	})
}

func GetQuerier() *querier.Querier {
	setup()
	return querierInstance
}

func GetTxManager() *tx.Manager {
	setup()
	return tx.New(poolInstance)
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if setupSql == "" {
		GetQuerier()
		return
	}
	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE payments, parcels, riders, users CASCADE;
	`)
	require.NoError(t, err)
}
