package database

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/notebot/internal/config"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.DatabaseConfig
		wantDriver string
		wantErr    bool
	}{
		{
			name: "mysql with valid config",
			cfg: config.DatabaseConfig{
				Driver:   config.DatabaseDriverMySQL,
				Host:     "localhost",
				Port:     3306,
				Database: "notebot",
				Username: "user",
				Password: "pass",
			},
			wantDriver: "mysql",
		},
		{
			name: "mysql with pool settings, TLS and params",
			cfg: config.DatabaseConfig{
				Driver:          config.DatabaseDriverMySQL,
				Host:            "db.example.com",
				Port:            3307,
				Database:        "notebot",
				Username:        "admin",
				TLS:             true,
				Params:          map[string]string{"charset": "utf8mb4"},
				MaxOpenConns:    25,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
			wantDriver: "mysql",
		},
		{
			name: "sqlite file",
			cfg: config.DatabaseConfig{
				Driver: config.DatabaseDriverSQLite,
				Path:   filepath.Join(t.TempDir(), "notebot.db"),
			},
			wantDriver: SQLiteDriverName,
		},
		{
			name:    "unsupported driver",
			cfg:     config.DatabaseConfig{Driver: "oracle"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			defer got.Close()

			assert.Equal(t, tt.wantDriver, got.DriverName())
		})
	}
}

func TestMysqlDSN(t *testing.T) {
	dsn := mysqlDSN(config.DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		Database: "notebot",
		Username: "user",
		Password: "pass",
	})
	assert.Contains(t, dsn, "user:pass@tcp(localhost:3306)/notebot")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestMigrate(t *testing.T) {
	tests := []struct {
		name      string
		driver    string
		setupMock func(mock sqlmock.Sqlmock)
		wantErr   string
	}{
		{
			name:   "mysql schema",
			driver: "mysql",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_entries").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name:   "sqlite schema",
			driver: SQLiteDriverName,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_entries").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
		},
		{
			name:   "exec error",
			driver: "mysql",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("CREATE TABLE IF NOT EXISTS kv_entries").
					WillReturnError(fmt.Errorf("access denied"))
			},
			wantErr: "create kv_entries",
		},
		{
			name:      "unknown driver",
			driver:    "postgres",
			setupMock: func(mock sqlmock.Sqlmock) {},
			wantErr:   "no schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setupMock(mock)
			err = Migrate(context.Background(), sqlx.NewDb(db, tt.driver))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
