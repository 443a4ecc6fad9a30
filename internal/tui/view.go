package tui

import (
	"fmt"
	"strings"

	"github.com/at-ishikawa/notebot/internal/catalog"
	"github.com/at-ishikawa/notebot/internal/store"
)

func (m Model) View() string {
	state := m.store.State()
	st := newStyles(state.Preferences.Theme)

	var b strings.Builder
	b.WriteString(st.title.Render(m.heading()))
	b.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n")
	}

	section := m.current.screen.section()
	switch {
	case state.SectionLoading(section):
		fmt.Fprintf(&b, "%s Loading %s...\n", m.spinner.View(), section)
	case state.SectionError(section) != "":
		b.WriteString(st.err.Render(state.SectionError(section)))
		b.WriteString("\n")
		b.WriteString(st.help.Render("press r to retry"))
		b.WriteString("\n")
	default:
		m.writeRows(&b, st, state)
	}

	if m.status != "" {
		b.WriteString(st.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(st.help.Render(m.helpText()))
	b.WriteString("\n")
	return b.String()
}

func (m Model) heading() string {
	switch m.current.screen {
	case screenCourses:
		title := "Courses"
		if m.current.title != "" {
			title += " · " + m.current.title
		}
		return fmt.Sprintf("%s  (sort: %s)", title, m.courseOrder)
	case screenNotes:
		return fmt.Sprintf("Notes · %s  (sort: %s)", m.current.title, m.noteOrder)
	default:
		return "Levels"
	}
}

func (m Model) helpText() string {
	keys := []string{"↑/↓ move", "enter open", "esc back", "/ filter", "r reload"}
	switch m.current.screen {
	case screenCourses:
		keys = append(keys, "f favorite", "s sort")
	case screenNotes:
		keys = append(keys, "f favorite", "o open", "s sort", "b link behavior")
	}
	return strings.Join(append(keys, "t theme", "q quit"), " • ")
}

func (m Model) writeRows(b *strings.Builder, st styles, state store.State) {
	var rows []string
	switch m.current.screen {
	case screenLevels:
		for _, level := range m.visibleLevels(state) {
			rows = append(rows, level.Title+st.detail.Render(
				fmt.Sprintf("  %d courses", state.CourseCount(level.ID))))
		}
	case screenCourses:
		for _, course := range m.visibleCourses(state) {
			rows = append(rows, m.star(st, state.IsFavorite(store.FavoriteCourses, course.ID))+course.Title+
				st.detail.Render(fmt.Sprintf("  %s · %d notes",
					catalog.LevelTitle(state.Levels.Data, course.LevelID), state.NoteCount(course.ID))))
		}
	case screenNotes:
		for _, note := range m.visibleNotes(state) {
			rows = append(rows, m.star(st, state.IsFavorite(store.FavoriteNotes, note.ID))+note.Title+
				st.detail.Render(fmt.Sprintf("  %s · %s",
					catalog.CourseTitle(state.Courses.Data, note.CourseID), catalog.FileTypeOf(note.File))))
		}
	}

	if len(rows) == 0 {
		b.WriteString(st.item.Render("Nothing here yet"))
		b.WriteString("\n")
		return
	}
	for i, row := range rows {
		if i == m.current.cursor {
			b.WriteString(st.selected.Render("> " + row))
		} else {
			b.WriteString(st.item.Render("  " + row))
		}
		b.WriteString("\n")
	}
}

func (m Model) star(st styles, favorite bool) string {
	if favorite {
		return st.favorite.Render("★ ")
	}
	return "  "
}
