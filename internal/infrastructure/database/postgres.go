package database

import (
	"fmt"

	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abdulkashif464-oss/smart-canteen/internal/infrastructure/repositories"
)

// Open creates a new database connection
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for all required tables.
// This includes the menu registry and Casbin policy tables for RBAC.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&repositories.DBMenuItem{}); err != nil {
		return fmt.Errorf("failed to migrate menu_items table: %w", err)
	}

	// The adapter creates the casbin_rule table if it doesn't exist
	if _, err := gormadapter.NewAdapterByDB(db); err != nil {
		return fmt.Errorf("failed to initialize Casbin GORM adapter: %w", err)
	}

	return nil
}
