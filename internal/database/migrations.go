package database

import (
	"embed"
	"fmt"

	"splitledger/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationsFS embed.FS

// NewMigrator returns a golang-migrate instance reading the SQL migrations for
// the configured dialect. Callers own the instance and must close it.
func NewMigrator(config Config) (*migrate.Migrate, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations/"+config.Driver)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	mig, err := migrate.NewWithSourceInstance("iofs", src, config.MigrationURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return mig, nil
}

func closeMigrator(mig *migrate.Migrate) {
	srcErr, dbErr := mig.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}
