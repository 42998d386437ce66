package database

import (
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/require"
)

var ledgerTables = []string{"people", "expenses", "expense_participants"}

func newMigratedManager(t *testing.T) *Manager {
	t.Helper()

	cfg := Config{
		Driver:   DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "ledger.db"),
		LogLevel: "silent",
	}
	m, err := NewManager(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	require.NoError(t, m.RunMigrations())
	return m
}

func TestNewManager_RejectsInvalidConfig(t *testing.T) {
	_, err := NewManager(Config{Driver: "mysql"})
	require.Error(t, err)
}

func TestRunMigrations_CreatesLedgerTables(t *testing.T) {
	m := newMigratedManager(t)

	for _, table := range ledgerTables {
		require.True(t, m.DB().Migrator().HasTable(table), "table %s should exist", table)
	}

	// A second run has nothing to apply.
	require.NoError(t, m.RunMigrations())
}

func TestMigrator_Down(t *testing.T) {
	m := newMigratedManager(t)

	mig, err := NewMigrator(m.config)
	require.NoError(t, err)
	defer closeMigrator(mig)

	version, dirty, err := mig.Version()
	require.NoError(t, err)
	require.False(t, dirty)
	require.Equal(t, uint(1), version)

	require.NoError(t, mig.Down())
	_, _, err = mig.Version()
	require.ErrorIs(t, err, migrate.ErrNilVersion)

	for _, table := range ledgerTables {
		require.False(t, m.DB().Migrator().HasTable(table), "table %s should be dropped", table)
	}
}

func TestSchema_DeletionPolicies(t *testing.T) {
	db := newMigratedManager(t).DB()

	require.NoError(t, db.Exec(`INSERT INTO people (id, name) VALUES (1, 'Alice'), (2, 'Bob')`).Error)
	require.NoError(t, db.Exec(`INSERT INTO expenses (id, title, total_amount, paid_by, created_date)
		VALUES (10, 'Dinner', 100, 1, CURRENT_TIMESTAMP), (11, 'Taxi', 30, 2, CURRENT_TIMESTAMP)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO expense_participants (expense_id, person_id, amount_owed)
		VALUES (10, 1, 50), (10, 2, 50), (11, 2, 30)`).Error)

	t.Run("person referenced as payer is restricted", func(t *testing.T) {
		require.Error(t, db.Exec(`DELETE FROM people WHERE id = 1`).Error)
	})

	t.Run("dangling payer is rejected", func(t *testing.T) {
		err := db.Exec(`INSERT INTO expenses (title, total_amount, paid_by, created_date)
			VALUES ('Ghost', 1, 999, CURRENT_TIMESTAMP)`).Error
		require.Error(t, err)
	})

	t.Run("deleting an expense cascades to its participants only", func(t *testing.T) {
		require.NoError(t, db.Exec(`DELETE FROM expenses WHERE id = 10`).Error)

		var remaining int64
		require.NoError(t, db.Table("expense_participants").Where("expense_id = ?", 10).Count(&remaining).Error)
		require.Zero(t, remaining)

		require.NoError(t, db.Table("expense_participants").Where("expense_id = ?", 11).Count(&remaining).Error)
		require.Equal(t, int64(1), remaining)
	})
}
