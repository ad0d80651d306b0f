package database

import (
	"fmt"
	"log"
	"time"

	"github.com/Hshshshsh454/Highway-delight/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PoolConfig sizes the database/sql pool behind gorm. Zero fields take the
// DefaultPool value.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

var DefaultPool = PoolConfig{
	MaxOpenConns:    25,
	MaxIdleConns:    10,
	ConnMaxLifetime: 5 * time.Minute,
	ConnMaxIdleTime: time.Minute,
}

func (p PoolConfig) withDefaults() PoolConfig {
	if p.MaxOpenConns <= 0 {
		p.MaxOpenConns = DefaultPool.MaxOpenConns
	}
	if p.MaxIdleConns <= 0 {
		p.MaxIdleConns = DefaultPool.MaxIdleConns
	}
	if p.MaxIdleConns > p.MaxOpenConns {
		p.MaxIdleConns = p.MaxOpenConns
	}
	if p.ConnMaxLifetime <= 0 {
		p.ConnMaxLifetime = DefaultPool.ConnMaxLifetime
	}
	if p.ConnMaxIdleTime <= 0 {
		p.ConnMaxIdleTime = DefaultPool.ConnMaxIdleTime
	}
	return p
}

// NewPostgresDB opens the catalog database, sizes its pool and migrates the
// catalog tables. It exits the process on failure.
func NewPostgresDB(dsn string, pool PoolConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	applied, err := ApplyPool(db, pool)
	if err != nil {
		log.Fatalf("failed to configure pool: %v", err)
	}
	log.Printf("[Database] pool: max_open=%d max_idle=%d lifetime=%s idle_time=%s",
		applied.MaxOpenConns, applied.MaxIdleConns, applied.ConnMaxLifetime, applied.ConnMaxIdleTime)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	return db
}

// ApplyPool sets the pool limits on db and returns the values applied.
func ApplyPool(db *gorm.DB, pool PoolConfig) (PoolConfig, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return PoolConfig{}, fmt.Errorf("get sql.DB: %w", err)
	}
	p := pool.withDefaults()
	sqlDB.SetMaxOpenConns(p.MaxOpenConns)
	sqlDB.SetMaxIdleConns(p.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(p.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(p.ConnMaxIdleTime)
	return p, nil
}

// Migrate creates the catalog tables: experiences, availabilities, time_slots.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Experience{}, &models.Availability{}, &models.TimeSlot{})
}
