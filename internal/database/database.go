package database

import (
	"fmt"
	"strings"
	"time"

	"splitledger/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Manager handles database operations
type Manager struct {
	db     *gorm.DB
	config Config
}

// NewManager opens the configured database and tunes its connection pool.
func NewManager(config Config) (*Manager, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database configuration: %w", err)
	}

	var dialector gorm.Dialector
	switch config.Driver {
	case DriverSQLite:
		dialector = sqlite.Open(config.DSN())
	case DriverPostgres:
		dialector = postgres.New(postgres.Config{
			DSN:                  config.DSN(),
			PreferSimpleProtocol: true,
		})
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(parseLogLevel(config.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}

	if config.Driver == DriverSQLite {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		if _, err := sqlDB.Exec("PRAGMA journal_mode = WAL;"); err != nil {
			logger.Get().Warnf("failed to enable WAL journal mode: %v", err)
		}
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, config: config}, nil
}

// RunMigrations applies pending SQL migrations embedded in the binary.
func (m *Manager) RunMigrations() error {
	logger.Get().Infow("Running database migrations...", "driver", m.config.Driver)

	mig, err := NewMigrator(m.config)
	if err != nil {
		return err
	}
	defer closeMigrator(mig)

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}

// Close releases the connection pool.
func (m *Manager) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func parseLogLevel(level string) gormlogger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
