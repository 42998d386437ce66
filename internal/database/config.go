package database

import (
	"fmt"
	"strings"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds database configuration
type Config struct {
	Driver string

	// SQLite
	Path string

	// PostgreSQL
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string

	// LogLevel is the GORM log level: silent, error, warn or info.
	LogLevel string
}

// Validate checks that the configuration names a supported driver and carries
// the settings that driver needs.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("sqlite driver requires a database path")
		}
	case DriverPostgres:
		if c.Host == "" || c.DBName == "" {
			return fmt.Errorf("postgres driver requires a host and a database name")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.Driver)
	}
	return nil
}

// DSN returns the connection string handed to the GORM dialector.
func (c Config) DSN() string {
	if c.Driver == DriverSQLite {
		// Foreign keys are enforced per connection in SQLite, so the pragma has
		// to travel with the DSN rather than be executed once.
		return withQuery(c.Path, "_foreign_keys=on&_busy_timeout=5000")
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrationURL returns the URL golang-migrate uses to reach the database.
func (c Config) MigrationURL() string {
	if c.Driver == DriverSQLite {
		return "sqlite3://" + withQuery(c.Path, "_foreign_keys=on")
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

func withQuery(path, query string) string {
	if strings.Contains(path, "?") {
		return path + "&" + query
	}
	return path + "?" + query
}
