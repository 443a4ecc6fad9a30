package cli

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/at-ishikawa/notebot/internal/catalog"
	"github.com/at-ishikawa/notebot/internal/store"
)

func testState() store.State {
	s := store.New()
	s.Dispatch(store.SetLevels([]catalog.Level{{ID: "L1", Title: "100 Level"}}))
	s.Dispatch(store.SetCourses([]catalog.Course{
		{ID: "C1", Title: "Algebra", LevelID: "L1"},
		{ID: "C2", Title: "Physics", LevelID: "L9"},
	}))
	s.Dispatch(store.SetNotes([]catalog.Note{
		{ID: "N1", Title: "Sets", File: "https://docs.google.com/document/d/1/view", CourseID: "C1",
			UpdatedAt: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)},
		{ID: "N2", Title: "Forces", File: "https://example.com/forces.pdf", CourseID: "C404"},
	}))
	s.Dispatch(store.FavoriteNote(catalog.Note{ID: "N1", Title: "Sets", CourseID: "C1"}))
	s.Dispatch(store.AddRecentLink{Note: catalog.Note{ID: "N2", Title: "Forces", File: "https://example.com/forces.pdf"}})
	return s.State()
}

func TestPrinter(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	state := testState()
	tests := []struct {
		name  string
		print func(p *Printer) error
		want  []string
	}{
		{
			name:  "stats",
			print: func(p *Printer) error { return p.Stats(state) },
			want: []string{
				"Levels   1", "Courses  2", "Notes    2", "Favorites 1 notes, 0 courses",
				"Recently opened", "Forces  https://example.com/forces.pdf",
			},
		},
		{
			name:  "levels with course counts",
			print: func(p *Printer) error { return p.Levels(state) },
			want:  []string{"100 Level  [L1] 1 courses"},
		},
		{
			name:  "courses with unknown level",
			print: func(p *Printer) error { return p.Courses(state, state.Courses.Data) },
			want:  []string{"Algebra  [C1] 100 Level, 1 notes", "Physics  [C2] Unknown Level, 0 notes"},
		},
		{
			name:  "notes with favorites and file types",
			print: func(p *Printer) error { return p.Notes(state, state.Notes.Data) },
			want: []string{
				"★ Sets  [N1] Algebra, doc, updated 2024-02-03",
				"  Forces  [N2] Unknown Course, pdf",
			},
		},
		{
			name:  "empty notes",
			print: func(p *Printer) error { return p.Notes(state, nil) },
			want:  []string{"No notes found"},
		},
		{
			name:  "favorites",
			print: func(p *Printer) error { return p.Favorites(state) },
			want:  []string{"Favorite notes", "★ Sets", "No favorite courses"},
		},
		{
			name:  "preferences",
			print: func(p *Printer) error { return p.Preferences(state.Preferences) },
			want:  []string{"theme                  light", "language               en", "default_link_behavior  app"},
		},
		{
			name: "link",
			print: func(p *Printer) error {
				return p.Link(state.Notes.Data[0], catalog.BrowserURL(state.Notes.Data[0].File))
			},
			want: []string{"Sets (doc)", "https://docs.google.com/document/d/1/edit"},
		},
		{
			name:  "message",
			print: func(p *Printer) error { return p.Message("Added to favorites: %s", "Sets") },
			want:  []string{"Added to favorites: Sets\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.NoError(t, tt.print(NewPrinter(&buf, store.ThemeLight)))
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestPrinter_WriteError(t *testing.T) {
	p := NewPrinter(failingWriter{}, store.ThemeDark)
	err := p.Levels(testState())
	assert.ErrorContains(t, err, "closed pipe")

	var buf bytes.Buffer
	p.w = &buf
	assert.NoError(t, p.Error("Failed to fetch levels"))
	assert.Contains(t, buf.String(), "Failed to fetch levels")
}
