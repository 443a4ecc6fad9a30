package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/notebot/internal/api"
	"github.com/at-ishikawa/notebot/internal/config"
	"github.com/at-ishikawa/notebot/internal/loader"
	"github.com/at-ishikawa/notebot/internal/persist"
	"github.com/at-ishikawa/notebot/internal/storage"
	"github.com/at-ishikawa/notebot/internal/store"
)

// Session holds the components shared by every command.
type Session struct {
	Store  *store.Store
	Client *api.HTTPClient
	Loader *loader.Loader

	storage storage.KeyValueStore
	sync    *persist.Sync
}

// NewSession opens storage, hydrates a new store from it and keeps it in sync.
func NewSession(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Session, error) {
	kv, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("storage.Open() > %w", err)
	}
	return newSession(ctx, cfg.API, kv, logger), nil
}

func newSession(ctx context.Context, cfg config.APIConfig, kv storage.KeyValueStore, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}

	s := store.New()
	sync := persist.New(kv, logger)
	sync.Hydrate(ctx, s)
	sync.Attach(s)

	client := api.NewClient(cfg.BaseURL, cfg.Timeout, cfg.RetryAttempts)
	return &Session{
		Store:   s,
		Client:  client,
		Loader:  loader.New(client, s, logger),
		storage: kv,
		sync:    sync,
	}
}

// Close flushes pending writes and releases the storage and HTTP client.
func (session *Session) Close(ctx context.Context) error {
	var errs []error
	if err := session.sync.Close(ctx); err != nil {
		errs = append(errs, fmt.Errorf("sync.Close() > %w", err))
	}
	if err := session.storage.Close(); err != nil {
		errs = append(errs, fmt.Errorf("storage.Close() > %w", err))
	}
	if err := session.Client.Close(); err != nil {
		errs = append(errs, fmt.Errorf("client.Close() > %w", err))
	}
	return errors.Join(errs...)
}
