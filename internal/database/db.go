package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"steelcatalog/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the Postgres pool and migrates the catalog schema
func NewConnection(ctx context.Context, dsn string, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), Config(logger.Warn))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := Migrate(db); err != nil {
		log.Warn("failed to auto-migrate models", "error", err)
	}

	return db, nil
}

// Config is shared by the Postgres pool and the SQLite test databases.
// Timestamps are written in UTC and driver errors are translated to gorm's
// ErrDuplicatedKey / ErrForeignKeyViolated.
func Config(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		NowFunc:        func() time.Time { return time.Now().UTC() },
		TranslateError: true,
	}
}

// Migrate creates or updates every table the service owns.
// Parents come before children so the cascade constraints can be attached.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.ProductCategory{},
		&model.ProductImage{},
		&model.ProductDocument{},
		&model.AuditLog{},
	)
}
