package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"SERVER_PORT", "TAX_RATE", "CATALOG_SOURCE", "CATALOG_TODAY", "DB_HOST", "DB_NAME", "RABBITMQ_URL", "REDIS_URL", "IDEMPOTENCY_TTL", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "0.055", cfg.TaxRate)
	assert.Equal(t, CatalogSourceFixtures, cfg.CatalogSource)
	assert.Empty(t, cfg.CatalogToday)
	assert.Empty(t, cfg.RabbitURL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, 10, cfg.DBMaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, time.Minute, cfg.DBConnMaxIdleTime)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=experiences sslmode=disable", cfg.DSN())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("TAX_RATE", "0.18")
	t.Setenv("CATALOG_SOURCE", CatalogSourcePostgres)
	t.Setenv("CATALOG_TODAY", "2026-03-10")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "storefront")
	t.Setenv("IDEMPOTENCY_TTL", "90m")

	cfg := Load()

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "0.18", cfg.TaxRate)
	assert.Equal(t, CatalogSourcePostgres, cfg.CatalogSource)
	assert.Equal(t, "2026-03-10", cfg.CatalogToday)
	assert.Equal(t, 90*time.Minute, cfg.IdempotencyTTL)
	assert.Contains(t, cfg.DSN(), "host=db")
	assert.Contains(t, cfg.DSN(), "dbname=storefront")
}

func TestLoad_InvalidTTLFallsBack(t *testing.T) {
	t.Setenv("IDEMPOTENCY_TTL", "soon")

	assert.Equal(t, 24*time.Hour, Load().IdempotencyTTL)
}

func TestLoad_PoolFromEnv(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("DB_MAX_IDLE_CONNS", "many")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")
	t.Setenv("DB_CONN_MAX_IDLE_TIME", "-1s")

	cfg := Load()

	assert.Equal(t, 50, cfg.DBMaxOpenConns)
	assert.Equal(t, 10, cfg.DBMaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
	assert.Equal(t, time.Minute, cfg.DBConnMaxIdleTime)
}

func TestLocation(t *testing.T) {
	cfg := &Config{CatalogTimezone: "UTC"}
	assert.Equal(t, time.UTC, cfg.Location())

	cfg.CatalogTimezone = "Not/AZone"
	assert.Equal(t, time.UTC, cfg.Location())
}
