// Package persist mirrors favorites and preferences between the store and durable
// key-value storage.
package persist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/at-ishikawa/notebot/internal/storage"
	"github.com/at-ishikawa/notebot/internal/store"
)

const (
	FavoritesKey   = "favorites"
	PreferencesKey = "preferences"

	writeTimeout = 5 * time.Second
)

// Sync hydrates a store from storage at startup and writes favorites and
// preferences back whenever they change.
type Sync struct {
	kv     storage.KeyValueStore
	logger *slog.Logger

	mu          sync.Mutex
	unsubscribe func()
	writers     []*writer
}

func New(kv storage.KeyValueStore, logger *slog.Logger) *Sync {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sync{
		kv:     kv,
		logger: logger.With("component", "persist"),
	}
}

// Hydrate seeds s with the persisted favorites and preferences. Missing or
// unreadable values leave the defaults in place.
func (p *Sync) Hydrate(ctx context.Context, s *store.Store) {
	var favorites store.FavoriteSet
	if p.load(ctx, FavoritesKey, &favorites) {
		s.Dispatch(store.SetFavorites{Favorites: favorites})
	}

	var patch store.PreferencesPatch
	if p.load(ctx, PreferencesKey, &patch) {
		s.Dispatch(store.UpdatePreferences{Patch: patch})
	}
}

func (p *Sync) load(ctx context.Context, key string, value any) bool {
	contents, err := p.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		p.logger.Debug("nothing persisted yet", "key", key)
		return false
	}
	if err != nil {
		p.logger.Warn("failed to read persisted value", "key", key, "error", err)
		return false
	}
	if err := json.Unmarshal(contents, value); err != nil {
		p.logger.Warn("failed to decode persisted value", "key", key, "error", err)
		return false
	}
	return true
}

func (p *Sync) PersistFavorites(ctx context.Context, favorites store.FavoriteSet) error {
	return p.persist(ctx, FavoritesKey, favorites)
}

func (p *Sync) PersistPreferences(ctx context.Context, preferences store.Preferences) error {
	return p.persist(ctx, PreferencesKey, preferences)
}

func (p *Sync) persist(ctx context.Context, key string, value any) error {
	contents, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("json.Marshal(%s) > %w", key, err)
	}
	if err := p.kv.Set(ctx, key, contents); err != nil {
		return fmt.Errorf("kv.Set(%s) > %w", key, err)
	}
	return nil
}

// Attach subscribes to s. Each change to favorites or preferences is encoded on the
// dispatching goroutine and written in the background, newest value first.
func (p *Sync) Attach(s *store.Store) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.unsubscribe != nil {
		return
	}

	favorites, preferences := p.startWriter(FavoritesKey), p.startWriter(PreferencesKey)
	p.writers = []*writer{favorites, preferences}
	p.unsubscribe = s.Subscribe(func(state store.State, change store.Change) {
		if change.Favorites {
			p.enqueue(favorites, state.Favorites)
		}
		if change.Preferences {
			p.enqueue(preferences, state.Preferences)
		}
	})
}

func (p *Sync) enqueue(w *writer, value any) {
	contents, err := json.Marshal(value)
	if err != nil {
		p.logger.Warn("failed to encode value", "key", w.key, "error", err)
		return
	}
	w.submit(contents)
}

// Close detaches from the store once a dispatch in progress has finished, then waits
// for pending writes, at most until ctx is done.
func (p *Sync) Close(ctx context.Context) error {
	p.mu.Lock()
	unsubscribe, writers := p.unsubscribe, p.writers
	p.unsubscribe, p.writers = nil, nil
	p.mu.Unlock()
	if unsubscribe == nil {
		return nil
	}

	unsubscribe()
	for _, w := range writers {
		close(w.stop)
	}
	for _, w := range writers {
		select {
		case <-w.done:
		case <-ctx.Done():
			return fmt.Errorf("waiting for %s writes > %w", w.key, ctx.Err())
		}
	}
	return nil
}

func (p *Sync) startWriter(key string) *writer {
	w := &writer{
		key:    key,
		notify: make(chan struct{}, 1),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go w.run(p.write)
	return w
}

func (p *Sync) write(key string, contents []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	if err := p.kv.Set(ctx, key, contents); err != nil {
		p.logger.Warn("failed to persist value", "key", key, "error", err)
		return
	}
	p.logger.Debug("persisted value", "key", key, "bytes", len(contents))
}

// writer owns the background writes of one key. Only the newest pending value is
// kept, so a slow backend sees fewer writes but never an older value after a newer one.
type writer struct {
	key string

	mu      sync.Mutex
	pending []byte

	notify chan struct{}
	stop   chan struct{}
	done   chan struct{}
}

func (w *writer) submit(contents []byte) {
	w.mu.Lock()
	w.pending = contents
	w.mu.Unlock()

	select {
	case w.notify <- struct{}{}:
	default:
	}
}

func (w *writer) take() []byte {
	w.mu.Lock()
	defer w.mu.Unlock()
	contents := w.pending
	w.pending = nil
	return contents
}

func (w *writer) run(write func(key string, contents []byte)) {
	defer close(w.done)
	for {
		select {
		case <-w.notify:
			if contents := w.take(); contents != nil {
				write(w.key, contents)
			}
		case <-w.stop:
			if contents := w.take(); contents != nil {
				write(w.key, contents)
			}
			return
		}
	}
}
