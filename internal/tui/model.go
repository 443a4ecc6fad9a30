// Package tui is the interactive terminal browser of levels, courses and notes.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/at-ishikawa/notebot/internal/catalog"
	"github.com/at-ishikawa/notebot/internal/store"
)

// Loader runs the fetch cycles behind each screen.
type Loader interface {
	LoadHome(ctx context.Context) error
	LoadLevels(ctx context.Context) error
	LoadCourses(ctx context.Context, levelID string) error
	LoadNotes(ctx context.Context, courseID string) error
}

type screen int

const (
	screenLevels screen = iota
	screenCourses
	screenNotes
)

func (s screen) section() store.Section {
	switch s {
	case screenCourses:
		return store.SectionCourses
	case screenNotes:
		return store.SectionNotes
	default:
		return store.SectionLevels
	}
}

type frame struct {
	screen   screen
	levelID  string
	courseID string
	title    string
	cursor   int
}

type loadedMsg struct {
	seq int
	err error
}

type Model struct {
	ctx    context.Context
	store  *store.Store
	loader Loader

	current frame
	history []frame

	courseOrder catalog.CourseOrder
	noteOrder   catalog.NoteOrder

	filter    textinput.Model
	filtering bool
	spinner   spinner.Model
	status    string

	loadSeq int
	cancel  context.CancelFunc
	initial tea.Cmd
}

func New(ctx context.Context, s *store.Store, loader Loader) Model {
	filter := textinput.New()
	filter.Placeholder = "Filter..."
	filter.CharLimit = 64
	filter.Prompt = "/ "
	filter.Cursor.SetMode(cursor.CursorStatic)

	m := Model{
		ctx:         ctx,
		store:       s,
		loader:      loader,
		current:     frame{screen: screenLevels},
		courseOrder: catalog.CourseOrderTitle,
		noteOrder:   catalog.NoteOrderNewest,
		filter:      filter,
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
	m.initial = m.load(loader.LoadHome)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.initial)
}

// load cancels the load in flight and starts fn.
func (m *Model) load(fn func(ctx context.Context) error) tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.loadSeq++
	seq := m.loadSeq
	return func() tea.Msg {
		return loadedMsg{seq: seq, err: fn(ctx)}
	}
}

func (m *Model) reload() tea.Cmd {
	loader := m.loader
	switch m.current.screen {
	case screenCourses:
		// all courses are loaded so the level counts stay right when going back
		return m.load(func(ctx context.Context) error {
			return loader.LoadCourses(ctx, "")
		})
	case screenNotes:
		courseID := m.current.courseID
		return m.load(func(ctx context.Context) error {
			return loader.LoadNotes(ctx, courseID)
		})
	default:
		return m.load(loader.LoadLevels)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.seq == m.loadSeq && m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.current.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.current.cursor = 0
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.store.State()
	switch msg.String() {
	case "ctrl+c", "q":
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		return m, tea.Quit
	case "up", "k":
		if m.current.cursor > 0 {
			m.current.cursor--
		}
	case "down", "j":
		if m.current.cursor < m.rowCount(state)-1 {
			m.current.cursor++
		}
	case "enter":
		return m.enter(state)
	case "esc", "backspace":
		return m.back()
	case "f":
		m.toggleFavorite(state)
	case "o":
		if m.current.screen == screenNotes {
			m.open(state)
		}
	case "s":
		m.cycleOrder()
	case "/":
		m.filtering = true
		cmd := m.filter.Focus()
		return m, cmd
	case "r":
		m.status = ""
		return m, m.reload()
	case "t":
		m.store.Dispatch(store.UpdatePreferences{Patch: state.Preferences.ToggleTheme()})
	case "b":
		behavior := store.LinkBehaviorBrowser
		if state.Preferences.DefaultLinkBehavior == store.LinkBehaviorBrowser {
			behavior = store.LinkBehaviorApp
		}
		m.store.Dispatch(store.UpdatePreferences{Patch: store.PreferencesPatch{DefaultLinkBehavior: &behavior}})
		m.status = fmt.Sprintf("Links open in the %s", behavior)
	}
	return m, nil
}

func (m Model) enter(state store.State) (tea.Model, tea.Cmd) {
	next := frame{}
	switch m.current.screen {
	case screenLevels:
		levels := m.visibleLevels(state)
		if m.current.cursor >= len(levels) {
			return m, nil
		}
		level := levels[m.current.cursor]
		next = frame{screen: screenCourses, levelID: level.ID, title: level.Title}
	case screenCourses:
		courses := m.visibleCourses(state)
		if m.current.cursor >= len(courses) {
			return m, nil
		}
		course := courses[m.current.cursor]
		next = frame{screen: screenNotes, levelID: m.current.levelID, courseID: course.ID, title: course.Title}
	case screenNotes:
		m.open(state)
		return m, nil
	}

	m.history = append(m.history, m.current)
	m.current = next
	m.resetFilter()
	m.status = ""
	return m, m.reload()
}

func (m Model) back() (tea.Model, tea.Cmd) {
	if len(m.history) == 0 {
		return m, nil
	}
	m.current = m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.resetFilter()
	m.status = ""
	return m, m.reload()
}

func (m *Model) resetFilter() {
	m.filtering = false
	m.filter.Blur()
	m.filter.SetValue("")
}

func (m *Model) toggleFavorite(state store.State) {
	switch m.current.screen {
	case screenCourses:
		courses := m.visibleCourses(state)
		if m.current.cursor >= len(courses) {
			return
		}
		course := courses[m.current.cursor]
		if state.IsFavorite(store.FavoriteCourses, course.ID) {
			m.store.Dispatch(store.RemoveFavorite{Kind: store.FavoriteCourses, ID: course.ID})
			m.status = "Removed from favorites: " + course.Title
			return
		}
		m.store.Dispatch(store.FavoriteCourse(course))
		m.status = "Added to favorites: " + course.Title
	case screenNotes:
		notes := m.visibleNotes(state)
		if m.current.cursor >= len(notes) {
			return
		}
		note := notes[m.current.cursor]
		if state.IsFavorite(store.FavoriteNotes, note.ID) {
			m.store.Dispatch(store.RemoveFavorite{Kind: store.FavoriteNotes, ID: note.ID})
			m.status = "Removed from favorites: " + note.Title
			return
		}
		m.store.Dispatch(store.FavoriteNote(note))
		m.status = "Added to favorites: " + note.Title
	}
}

func (m *Model) open(state store.State) {
	notes := m.visibleNotes(state)
	if m.current.cursor >= len(notes) {
		return
	}
	note := notes[m.current.cursor]
	m.store.Dispatch(store.AddRecentLink{Note: note})
	m.status = "Open " + state.Preferences.LinkFor(note)
}

func (m *Model) cycleOrder() {
	switch m.current.screen {
	case screenCourses:
		i := slices.Index(catalog.AllCourseOrders, m.courseOrder)
		m.courseOrder = catalog.AllCourseOrders[(i+1)%len(catalog.AllCourseOrders)]
	case screenNotes:
		i := slices.Index(catalog.AllNoteOrders, m.noteOrder)
		m.noteOrder = catalog.AllNoteOrders[(i+1)%len(catalog.AllNoteOrders)]
	default:
		return
	}
	m.current.cursor = 0
}

func (m Model) query() string {
	return strings.ToLower(strings.TrimSpace(m.filter.Value()))
}

func (m Model) visibleLevels(state store.State) []catalog.Level {
	query := m.query()
	if query == "" {
		return state.Levels.Data
	}
	var levels []catalog.Level
	for _, level := range state.Levels.Data {
		if strings.Contains(strings.ToLower(level.Title), query) {
			levels = append(levels, level)
		}
	}
	return levels
}

func (m Model) visibleCourses(state store.State) []catalog.Course {
	courses := catalog.CoursesForLevel(state.Courses.Data, m.current.levelID)
	if query := m.query(); query != "" {
		courses = slices.DeleteFunc(slices.Clone(courses), func(course catalog.Course) bool {
			return !strings.Contains(strings.ToLower(course.Title), query)
		})
	}
	return catalog.SortCourses(courses, m.courseOrder, state.Notes.Data)
}

func (m Model) visibleNotes(state store.State) []catalog.Note {
	notes := catalog.NotesForCourse(state.Notes.Data, m.current.courseID)
	if query := m.query(); query != "" {
		notes = catalog.Search(query, notes, state.Courses.Data, state.Levels.Data)
	}
	return catalog.SortNotes(notes, m.noteOrder)
}

func (m Model) rowCount(state store.State) int {
	switch m.current.screen {
	case screenCourses:
		return len(m.visibleCourses(state))
	case screenNotes:
		return len(m.visibleNotes(state))
	default:
		return len(m.visibleLevels(state))
	}
}
