package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/notebot/internal/api"
	"github.com/at-ishikawa/notebot/internal/catalog"
	"github.com/at-ishikawa/notebot/internal/loader"
	mock_api "github.com/at-ishikawa/notebot/internal/mocks/api"
	"github.com/at-ishikawa/notebot/internal/store"
)

var (
	levels = []catalog.Level{{ID: "L1", Title: "100 Level"}, {ID: "L2", Title: "200 Level"}}
	courses = []catalog.Course{
		{ID: "C1", Title: "Algebra", LevelID: "L1", CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "C2", Title: "Calculus", LevelID: "L1", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "C3", Title: "Physics", LevelID: "L2"},
	}
	notes = []catalog.Note{
		{ID: "N1", Title: "Sets", File: "https://docs.google.com/document/d/1/view", CourseID: "C1", LevelID: "L1"},
		{ID: "N2", Title: "Groups", File: "https://docs.google.com/presentation/d/2/view", CourseID: "C1", LevelID: "L1"},
		{ID: "N3", Title: "Limits", File: "https://example.com/limits.pdf", CourseID: "C2", LevelID: "L1"},
	}
)

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// drain runs cmd and feeds load results back into the model. Timer driven
// messages such as spinner ticks and cursor blinks are dropped.
func drain(t *testing.T, m tea.Model, cmd tea.Cmd) tea.Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drain(t, m, c)
		}
	case loadedMsg:
		var next tea.Cmd
		m, next = m.Update(msg)
		m = drain(t, m, next)
	}
	return m
}

func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		var cmd tea.Cmd
		m, cmd = m.Update(key(k))
		m = drain(t, m, cmd)
	}
	return m
}

func newBrowser(t *testing.T) (tea.Model, *store.Store, *mock_api.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mock_api.NewMockClient(ctrl)
	client.EXPECT().Levels(gomock.Any()).Return(levels, nil).AnyTimes()
	client.EXPECT().Courses(gomock.Any()).Return(courses, nil).AnyTimes()
	client.EXPECT().Notes(gomock.Any()).Return(notes, nil).AnyTimes()

	s := store.New()
	m := New(context.Background(), s, loader.New(client, s, nil))
	return drain(t, m, m.Init()), s, client
}

func TestModel_Navigation(t *testing.T) {
	m, _, client := newBrowser(t)
	client.EXPECT().NotesByCourse(gomock.Any(), "C1").Return(notes[:2], nil)

	view := m.View()
	assert.Contains(t, view, "Levels")
	assert.Contains(t, view, "100 Level  2 courses")
	assert.Contains(t, view, "200 Level  1 courses")

	m = press(t, m, "enter")
	view = m.View()
	assert.Contains(t, view, "Courses · 100 Level")
	assert.Contains(t, view, "Algebra  100 Level · 2 notes")
	assert.Contains(t, view, "Calculus  100 Level · 1 notes")
	assert.NotContains(t, view, "Physics")

	m = press(t, m, "enter")
	view = m.View()
	assert.Contains(t, view, "Notes · Algebra")
	assert.Contains(t, view, "Sets  Algebra · doc")
	assert.Contains(t, view, "Groups  Algebra · slide")
	assert.NotContains(t, view, "Limits")

	m = press(t, m, "esc")
	view = m.View()
	assert.Contains(t, view, "Courses · 100 Level")
	assert.Contains(t, view, "Algebra  100 Level · 2 notes")

	m = press(t, m, "esc", "down", "enter")
	assert.Contains(t, m.View(), "Courses · 200 Level")
	assert.Contains(t, m.View(), "Physics")
}

func TestModel_FavoritesAndOpen(t *testing.T) {
	m, s, client := newBrowser(t)
	client.EXPECT().NotesByCourse(gomock.Any(), "C1").Return(notes[:2], nil)
	m = press(t, m, "enter", "enter")

	m = press(t, m, "f")
	require.True(t, s.State().IsFavorite(store.FavoriteNotes, "N1"))
	assert.Contains(t, m.View(), "★ Sets")
	assert.Contains(t, m.View(), "Added to favorites: Sets")

	m = press(t, m, "f")
	assert.False(t, s.State().IsFavorite(store.FavoriteNotes, "N1"))

	m = press(t, m, "o")
	assert.Equal(t, []catalog.Note{notes[0]}, s.State().RecentLinks)
	assert.Contains(t, m.View(), "Open https://docs.google.com/document/d/1/view")

	m = press(t, m, "b", "down", "enter")
	assert.Equal(t, store.LinkBehaviorBrowser, s.State().Preferences.DefaultLinkBehavior)
	assert.Equal(t, "N2", s.State().RecentLinks[0].ID)
	assert.Contains(t, m.View(), "Open https://docs.google.com/presentation/d/2/edit")

	m = press(t, m, "esc", "f")
	assert.True(t, s.State().IsFavorite(store.FavoriteCourses, "C1"))
}

func TestModel_SortAndFilter(t *testing.T) {
	m, _, _ := newBrowser(t)
	m = press(t, m, "enter")

	view := m.View()
	assert.Less(t, strings.Index(view, "Algebra"), strings.Index(view, "Calculus"))

	m = press(t, m, "s")
	view = m.View()
	assert.Contains(t, view, "sort: newest")
	assert.Less(t, strings.Index(view, "Calculus"), strings.Index(view, "Algebra"))

	m = press(t, m, "/", "c", "a", "l", "enter")
	view = m.View()
	assert.Contains(t, view, "Calculus")
	assert.NotContains(t, view, "Algebra")

	m = press(t, m, "/", "esc")
	assert.Contains(t, m.View(), "Algebra")
}

func TestModel_ErrorAndRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock_api.NewMockClient(ctrl)
	gomock.InOrder(
		client.EXPECT().Levels(gomock.Any()).Return(nil, &api.Error{Message: "Failed to fetch levels"}),
		client.EXPECT().Levels(gomock.Any()).Return(levels, nil),
	)
	client.EXPECT().Courses(gomock.Any()).Return(courses, nil).AnyTimes()
	client.EXPECT().Notes(gomock.Any()).Return(notes, nil).AnyTimes()

	s := store.New()
	var m tea.Model = New(context.Background(), s, loader.New(client, s, nil))
	m = drain(t, m, m.Init())

	view := m.View()
	assert.Contains(t, view, "Failed to fetch levels")
	assert.Contains(t, view, "press r to retry")

	m = press(t, m, "r")
	assert.NotContains(t, m.View(), "Failed to fetch levels")
	assert.Contains(t, m.View(), "100 Level")
}

type nopLoader struct{}

func (nopLoader) LoadHome(context.Context) error            { return nil }
func (nopLoader) LoadLevels(context.Context) error          { return nil }
func (nopLoader) LoadCourses(context.Context, string) error { return nil }
func (nopLoader) LoadNotes(context.Context, string) error   { return nil }

func TestModel_LoadingView(t *testing.T) {
	s := store.New()
	s.Dispatch(store.SetLoading{Section: store.SectionLevels, Loading: true})
	m := New(context.Background(), s, nopLoader{})
	assert.Contains(t, m.View(), "Loading levels...")
}

func TestModel_ThemeAndQuit(t *testing.T) {
	s := store.New()
	var m tea.Model = New(context.Background(), s, nopLoader{})

	m = press(t, m, "t")
	assert.Equal(t, store.ThemeDark, s.State().Preferences.Theme)
	m = press(t, m, "t")
	assert.Equal(t, store.ThemeLight, s.State().Preferences.Theme)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_EmptyScreen(t *testing.T) {
	m := New(context.Background(), store.New(), nopLoader{})
	next := press(t, m, "enter", "f", "o", "down")
	assert.Contains(t, next.View(), "Nothing here yet")
	assert.Contains(t, next.View(), "Levels")
}
