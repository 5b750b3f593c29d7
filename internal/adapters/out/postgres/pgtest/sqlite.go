package pgtest

import (
	"context"
	"path/filepath"

	"courierservice/internal/adapters/out/postgres"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteDSNOptions enables foreign keys and waits for locks instead of failing.
const SQLiteDSNOptions = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"

// OpenSQLite creates a migrated SQLite database file in dir. It is used where
// a container is too heavy, e.g. HTTP end-to-end tests.
func OpenSQLite(ctx context.Context, dir string) (*gorm.DB, error) {
	dsn := filepath.Join(dir, "courierservice.db") + SQLiteDSNOptions
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err = postgres.Migrate(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}
