// Package database opens the relational store behind the repositories and
// keeps its schema current.
package database

import (
	"fmt"
	"time"

	"tienda/internal/config"
	"tienda/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the configured database and sizes the connection pool.
// Constraint violations are translated to gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.Driver, cfg.ConnectionString())
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database: open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database: get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("database: ping: %w", err)
	}
	return db, nil
}

// Dialector picks the GORM driver for name.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlserver":
		return sqlserver.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	case "mysql":
		return mysql.Open(dsn), nil
	case "sqlite":
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("database: unsupported driver %q", driver)
	}
}

// Migrate creates or updates the four tables with their unique indexes and
// foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("database: migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
