package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens a SQLite database. In-memory DSNs should use shared cache
// (file:name?mode=memory&cache=shared) so every pooled connection sees the same data.
func NewSQLiteDB(dsn string, opts PoolOptions, gormLogger logger.Interface) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := opts.apply(db); err != nil {
		return nil, err
	}

	return db, nil
}
