// Package dbtest provides a migrated and seeded in-memory store for tests.
package dbtest

import (
	"testing"

	"gamehub/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// New returns a fresh SQLite database loaded with db.TestData.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	return NewWithData(t, db.TestData())
}

// NewWithData returns a fresh SQLite database loaded with data.
func NewWithData(t testing.TB, data db.SeedData) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), db.GormConfig(logger.Silent))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("sql.DB: %v", err)
	}
	// every pooled connection to ":memory:" would be a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Seed(gdb, data); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return gdb
}
