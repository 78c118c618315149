package infra

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"gainsystem/internal/models/db_models"
	"gainsystem/pkg/config"
)

func InitPostgresql(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := db.AutoMigrate(db_models.All()...); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	slog.Info("postgres connected")
	return db, nil
}

func ClosePostgresql(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
