package db

import (
	"fmt"
	"time"

	"gamehub/models"
	"gamehub/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config describes how to reach the relational store.
type Config struct {
	DSN          string
	MaxOpenConns int
	LogLevel     logger.LogLevel
}

// GormConfig is shared by every dialector so postgres and the test store
// behave the same way (translated errors, UTC timestamps).
func GormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(level),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Open connects to postgres and sizes the connection pool.
func Open(cfg Config) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN), GormConfig(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	utils.Log.Info("Database connected")
	return gdb, nil
}

// Migrate creates or updates the tables for every model.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.Category{}, &models.User{}, &models.Review{}, &models.Comment{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	utils.Log.Info("Database migrated")
	return nil
}

// Close releases the pooled connections.
func Close(gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
