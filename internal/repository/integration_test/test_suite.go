package integration_test

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"

	"order-service/internal/pkg/config"
	"order-service/internal/pkg/postgres"
	"order-service/pkg/logger/zap_adapter"
	"order-service/pkg/querier"
	"order-service/pkg/tx"
)

var (
	querierInstance   *querier.Querier
	txManagerInstance *tx.Manager
	suiteOnce         sync.Once
)

func setup() {
	// godotenv.Load(.env.test) не вызываем так как Makefile подгружает их
	cfg := &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}

	ctx := context.Background()

	zapLogger, err := zap_adapter.NewZapAdapter("order-service-integration", "error")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			log.Printf("failed to sync logger: %v", err)
		}
	}()

	connPool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
	if err != nil {
		panic(err)
	}

	if err := postgres.Migrate(ctx, zapLogger, connPool); err != nil {
		panic(err)
	}

	querierInstance = querier.New(connPool, pgxv5.DefaultCtxGetter)
	txManagerInstance = tx.New(connPool)
}

func GetQuerier() *querier.Querier {
	suiteOnce.Do(setup)
	return querierInstance
}

func GetTxManager() *tx.Manager {
	suiteOnce.Do(setup)
	return txManagerInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	if setupSql == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)

	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE order_items, orders, outbox;
	`)
	require.NoError(t, err)
}
