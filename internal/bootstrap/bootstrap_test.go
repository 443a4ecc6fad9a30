package bootstrap

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/notebot/internal/catalog"
	"github.com/at-ishikawa/notebot/internal/config"
	"github.com/at-ishikawa/notebot/internal/store"
)

func TestApp_Run(t *testing.T) {
	t.Run("run returns nil", func(t *testing.T) {
		app := NewApp()
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)
	})

	t.Run("run returns error", func(t *testing.T) {
		app := NewApp()
		want := errors.New("run failed")
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return want
		})
		assert.ErrorIs(t, err, want)
	})

	t.Run("shutdown hooks run in LIFO order on context cancel", func(t *testing.T) {
		app := NewApp()
		var mu sync.Mutex
		var order []string
		for _, name := range []string{"first", "second", "third"} {
			app.AddShutdownHook(func(ctx context.Context) error {
				mu.Lock()
				defer mu.Unlock()
				order = append(order, name)
				return nil
			})
		}

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"third", "second", "first"}, order)
	})

	t.Run("hooks run after run completes", func(t *testing.T) {
		app := NewApp()
		hookCalled := false

		err := app.Run(context.Background(), func(ctx context.Context) error {
			app.AddShutdownHook(func(ctx context.Context) error {
				hookCalled = true
				return nil
			})
			return nil
		})
		require.NoError(t, err)
		assert.True(t, hookCalled)
	})

	t.Run("hook and run errors are joined", func(t *testing.T) {
		app := NewApp()
		hookErr := errors.New("hook failed")
		runErr := errors.New("run failed")
		app.AddShutdownHook(func(ctx context.Context) error { return hookErr })

		err := app.Run(context.Background(), func(ctx context.Context) error {
			return runErr
		})
		assert.ErrorIs(t, err, hookErr)
		assert.ErrorIs(t, err, runErr)
	})
}

func TestSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/levels":
			_, _ = w.Write([]byte(`{"data":[{"_id":"L1","title":"100 Level"}]}`))
		default:
			_, _ = w.Write([]byte(`{"data":[]}`))
		}
	}))
	defer server.Close()

	cfg := config.Config{
		API: config.APIConfig{BaseURL: server.URL, Timeout: time.Second},
		Storage: config.StorageConfig{
			Backend:   config.StorageBackendFile,
			Directory: t.TempDir(),
		},
	}
	ctx := context.Background()

	session, err := NewSession(ctx, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, session.Loader.LoadLevels(ctx))
	assert.Equal(t, []catalog.Level{{ID: "L1", Title: "100 Level"}}, session.Store.State().Levels.Data)

	session.Store.Dispatch(store.FavoriteNote(catalog.Note{ID: "N1", Title: "Sets"}))
	theme := store.ThemeDark
	session.Store.Dispatch(store.UpdatePreferences{Patch: store.PreferencesPatch{Theme: &theme}})
	require.NoError(t, session.Close(ctx))

	reopened, err := NewSession(ctx, cfg, nil)
	require.NoError(t, err)
	defer reopened.Close(ctx)

	state := reopened.Store.State()
	assert.True(t, state.IsFavorite(store.FavoriteNotes, "N1"))
	assert.Equal(t, store.ThemeDark, state.Preferences.Theme)
	assert.Empty(t, state.Levels.Data, "catalog data is never persisted")
}

func TestNewSession_InvalidStorage(t *testing.T) {
	_, err := NewSession(context.Background(), config.Config{
		Storage: config.StorageConfig{Backend: "s3"},
	}, nil)
	assert.Error(t, err)
}
