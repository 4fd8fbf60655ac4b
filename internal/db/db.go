package db

import (
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dailyfood/internal/config"
	"dailyfood/internal/model"
)

// Open returns a connected GORM DB instance for the configured driver.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverMySQL:
		dialector = mysql.Open(dsn)
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		// Foreign keys are off by default in SQLite.
		dialector = sqlite.Open(dsn + sqliteParams(dsn))
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	if driver == config.DriverSQLite {
		// Each connection to an in-memory database sees its own database.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func sqliteParams(dsn string) string {
	if strings.Contains(dsn, "?") {
		return "&_pragma=foreign_keys(1)"
	}
	return "?_pragma=foreign_keys(1)"
}

// tables in dependency order, owners first.
var tables = []interface{}{
	&model.User{},
	&model.FoodCatalogEntry{},
	&model.FoodEntry{},
	&model.BloodSugarEntry{},
}

// Migrate creates or updates every table. When reset is set all tables are
// dropped first.
func Migrate(db *gorm.DB, reset bool, log logrus.FieldLogger) error {
	if reset {
		log.Warn("RESET_DB=true detected, dropping all tables")
		for i := len(tables) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(tables[i]); err != nil {
				log.WithError(err).Warn("drop table (may not exist)")
			}
		}
	}
	if err := db.AutoMigrate(tables...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
