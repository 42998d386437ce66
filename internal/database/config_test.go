package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{name: "sqlite", config: Config{Driver: DriverSQLite, Path: "ledger.db"}},
		{name: "sqlite without path", config: Config{Driver: DriverSQLite}, wantErr: true},
		{name: "postgres", config: Config{Driver: DriverPostgres, Host: "localhost", DBName: "ledger"}},
		{name: "postgres without host", config: Config{Driver: DriverPostgres, DBName: "ledger"}, wantErr: true},
		{name: "unknown driver", config: Config{Driver: "oracle"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	sqliteCfg := Config{Driver: DriverSQLite, Path: "/tmp/ledger.db"}
	require.Equal(t, "/tmp/ledger.db?_foreign_keys=on&_busy_timeout=5000", sqliteCfg.DSN())
	require.Equal(t, "sqlite3:///tmp/ledger.db?_foreign_keys=on", sqliteCfg.MigrationURL())

	memCfg := Config{Driver: DriverSQLite, Path: "file:ledger?mode=memory"}
	require.Equal(t, "file:ledger?mode=memory&_foreign_keys=on&_busy_timeout=5000", memCfg.DSN())

	pgCfg := Config{
		Driver: DriverPostgres, Host: "db", Port: "5432", User: "u",
		Password: "p", DBName: "ledger", SSLMode: "disable",
	}
	require.Equal(t, "host=db port=5432 user=u password=p dbname=ledger sslmode=disable", pgCfg.DSN())
	require.Equal(t, "postgres://u:p@db:5432/ledger?sslmode=disable", pgCfg.MigrationURL())
}
