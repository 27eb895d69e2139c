package infra

import (
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"earnhub/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {

	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		zap.L().Fatal("error connecting to database", zap.Error(err))
	}

	if err := connectionPool.AutoMigrate(
		&db_models.User{},
		&db_models.Plan{},
		&db_models.Task{},
		&db_models.Subscription{},
		&db_models.TaskProgress{},
		&db_models.Earnings{},
		&db_models.DailyEarning{},
		&db_models.Withdrawal{},
	); err != nil {
		zap.L().Fatal("error running migrations", zap.Error(err))
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
	} else {
		zap.L().Info("postgres connection closed")
	}
}
