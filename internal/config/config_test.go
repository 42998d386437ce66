package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"splitledger/internal/database"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "CORS_ALLOWED_ORIGINS", "DB_DRIVER", "DB_PATH", "DB_LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "development", cfg.Env)
	require.Equal(t, "8000", cfg.Port)
	require.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	require.Equal(t, database.DriverSQLite, cfg.Database.Driver)
	require.Equal(t, "splitwise.db", cfg.Database.Path)
	require.Equal(t, "warn", cfg.Database.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, app://desktop ,")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "ledger")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Port)
	require.Equal(t, []string{"http://localhost:5173", "app://desktop"}, cfg.AllowedOrigins)
	require.Equal(t, database.DriverPostgres, cfg.Database.Driver)
	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, "ledger", cfg.Database.DBName)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Load()
	require.Error(t, err)
}
