// Package export writes the locally owned state (favorites, preferences and recent
// links) to YAML and reads it back.
package export

import (
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/notebot/internal/catalog"
	"github.com/at-ishikawa/notebot/internal/store"
)

// Snapshot is the document written by Write.
type Snapshot struct {
	ExportedAt  time.Time         `yaml:"exported_at"`
	Preferences store.Preferences `yaml:"preferences"`
	Favorites   store.FavoriteSet `yaml:"favorites"`
	RecentLinks []catalog.Note    `yaml:"recent_links,omitempty"`
}

func NewSnapshot(state store.State, now time.Time) Snapshot {
	return Snapshot{
		ExportedAt:  now,
		Preferences: state.Preferences,
		Favorites:   state.Favorites,
		RecentLinks: state.RecentLinks,
	}
}

func Write(w io.Writer, snapshot Snapshot) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(snapshot); err != nil {
		return fmt.Errorf("encoder.Encode() > %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoder.Close() > %w", err)
	}
	return nil
}

func Read(r io.Reader) (Snapshot, error) {
	var snapshot Snapshot
	if err := yaml.NewDecoder(r).Decode(&snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("decoder.Decode() > %w", err)
	}
	return snapshot, nil
}

// Apply replaces the favorites of s and merges the preferences of snapshot.
// Recent links are restored oldest first so their order is kept.
func Apply(s *store.Store, snapshot Snapshot) {
	s.Dispatch(store.SetFavorites{Favorites: snapshot.Favorites})
	s.Dispatch(store.UpdatePreferences{Patch: snapshot.Preferences.Patch()})
	for i := len(snapshot.RecentLinks) - 1; i >= 0; i-- {
		s.Dispatch(store.AddRecentLink{Note: snapshot.RecentLinks[i]})
	}
}
