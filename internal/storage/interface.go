// Package storage provides the durable key-value stores that favorites and
// preferences are persisted to.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

//go:generate mockgen -source=interface.go -destination=../mocks/storage/mock_store.go -package=mock_storage

// KeyValueStore stores opaque values by key.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
