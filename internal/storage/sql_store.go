package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/notebot/internal/config"
	"github.com/at-ishikawa/notebot/internal/database"
)

var upsertQueries = map[string]string{
	config.DatabaseDriverMySQL: "INSERT INTO kv_entries (entry_key, value) VALUES (?, ?) " +
		"ON DUPLICATE KEY UPDATE value = VALUES(value)",
	database.SQLiteDriverName: "INSERT INTO kv_entries (entry_key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) " +
		"ON CONFLICT(entry_key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP",
}

// SQLStore keeps values in the kv_entries table of a MySQL or SQLite database.
type SQLStore struct {
	db     *sqlx.DB
	upsert string
}

// NewSQLStore wraps an open connection. The kv_entries table must already exist.
func NewSQLStore(db *sqlx.DB) (*SQLStore, error) {
	upsert, ok := upsertQueries[db.DriverName()]
	if !ok {
		return nil, fmt.Errorf("unsupported database driver: %s", db.DriverName())
	}
	return &SQLStore{db: db, upsert: upsert}, nil
}

func (store *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := store.db.GetContext(ctx, &value, "SELECT value FROM kv_entries WHERE entry_key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(kv_entries) > %w", err)
	}
	return []byte(value), nil
}

func (store *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := store.db.ExecContext(ctx, store.upsert, key, string(value)); err != nil {
		return fmt.Errorf("db.ExecContext(upsert kv_entries) > %w", err)
	}
	return nil
}

func (store *SQLStore) Delete(ctx context.Context, key string) error {
	if _, err := store.db.ExecContext(ctx, "DELETE FROM kv_entries WHERE entry_key = ?", key); err != nil {
		return fmt.Errorf("db.ExecContext(delete kv_entries) > %w", err)
	}
	return nil
}

func (store *SQLStore) Close() error {
	return store.db.Close()
}
