package db

import (
	"fmt"  // Error wrapping
	"time" // Pool lifetimes

	"reciplette/internal/config" // Custom package for configuration

	"gorm.io/driver/mysql" // MySQL driver for GORM
	"gorm.io/gorm"         // GORM ORM library
	"gorm.io/gorm/logger"  // GORM logger levels
)

// PoolOptions sizes the connection pool shared by all requests
type PoolOptions struct {
	MaxOpenConns    int           // Upper bound on open connections
	MaxIdleConns    int           // Idle connections kept warm
	ConnMaxLifetime time.Duration // Recycle connections after this long
}

// Open connects to MySQL using the configuration and sizes the pool
func Open(cfg *config.Config) (*gorm.DB, error) {
	return OpenDialector(mysql.Open(cfg.DSN()), PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnLifetime,
	}, logger.Warn)
}

// OpenDialector opens any GORM dialector with the given pool settings.
// Tests use it with the SQLite dialector.
func OpenDialector(d gorm.Dialector, opts PoolOptions, level logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	sqlDB, err := db.DB() // Underlying pool
	if err != nil {
		return nil, fmt.Errorf("failed to access DB pool: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
	return db, nil
}

// Close releases every pooled connection
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
