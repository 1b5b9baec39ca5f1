package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"go.uber.org/zap"

	"trailmix/internal/models/db_models"
)

func InitPostgresql(cfg *Config) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("error connecting to database", zap.Error(err))
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Account{},
		&db_models.Trip{},
		&db_models.TripDay{},
		&db_models.TripStop{},
	); err != nil {
		zap.L().Fatal("error migrating schema", zap.Error(err))
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Error("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		zap.L().Error("error closing database connection", zap.Error(err))
	}
}
