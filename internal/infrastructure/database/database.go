package database

import (
	"fmt"

	"hospitaldesk/config"
	"hospitaldesk/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewConnection opens the configured database and migrates the schema.
// SQLite is the default so the desk runs from a single local file;
// PostgreSQL is available for shared deployments.
func NewConnection(cfg config.DBConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
		)
		dialector = postgres.Open(dsn)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// SQLite tolerates a single writer; PostgreSQL gets a real pool.
	if cfg.Driver == "postgres" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&entity.Patient{}, &entity.Appointment{}, &entity.Bill{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logrus.Infof("Successfully connected to %s database", driverName(cfg.Driver))

	return db, nil
}

func driverName(driver string) string {
	if driver == "" {
		return "sqlite"
	}
	return driver
}
