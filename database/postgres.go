package database

import (
	"fmt"
	"log/slog" // use slog for structured logging
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shophub/internal/config"
	"shophub/internal/notification/models"
)

// ConnectPostgres opens the notification database. The underlying pool
// connects lazily, so an unreachable server is not fatal here: the handle is
// still returned and queries fail with 500s until the database comes back.
func ConnectPostgres(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		logger.Warn("database unreachable at startup, continuing without it", "error", err)
		return db, nil
	}

	// Run migrations
	if err := db.AutoMigrate(&models.Notification{}); err != nil {
		logger.Error("failed to run migrations", "error", err)
		return db, nil
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}
