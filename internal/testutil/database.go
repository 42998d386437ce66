// Package testutil provides test helpers for setting up migrated databases,
// creating fixtures, and making assertions.
package testutil

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"

	"splitledger/internal/database"
)

// SetupTestDB creates an isolated SQLite database in a temporary directory
// and applies the embedded SQL migrations the server runs at startup.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	manager, err := database.NewManager(database.Config{
		Driver:   database.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "ledger.db"),
		LogLevel: "silent",
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := manager.RunMigrations(); err != nil {
		_ = manager.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return manager.DB()
}

// TeardownTestDB closes the underlying database connection.
func TeardownTestDB(t *testing.T, db *gorm.DB) {
	t.Helper()

	sqlDB, err := db.DB()
	if err != nil {
		t.Errorf("failed to get underlying DB for teardown: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		t.Errorf("failed to close test database: %v", err)
	}
}
