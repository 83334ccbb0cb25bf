package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/runera/runera-backend/internal/store"
)

// OpenTestDB opens an in-memory SQLite database with every store table migrated.
// The pool is pinned to one connection, which also serializes concurrent transactions.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := store.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// OpenTestStore returns a Store backed by OpenTestDB
func OpenTestStore(t *testing.T) store.Store {
	t.Helper()
	return store.NewPGStore(OpenTestDB(t))
}
