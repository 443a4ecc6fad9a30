// Package cli renders store state as themed plain text.
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/at-ishikawa/notebot/internal/catalog"
	"github.com/at-ishikawa/notebot/internal/store"
)

// HomeRecentNotes is the number of recent links shown with the stats.
const HomeRecentNotes = 5

type palette struct {
	heading  *color.Color
	title    *color.Color
	muted    *color.Color
	favorite *color.Color
	err      *color.Color
}

func newPalette(theme store.Theme) palette {
	if theme == store.ThemeDark {
		return palette{
			heading:  color.New(color.Bold, color.FgHiCyan),
			title:    color.New(color.FgHiWhite),
			muted:    color.New(color.FgHiBlack),
			favorite: color.New(color.FgHiYellow),
			err:      color.New(color.FgHiRed),
		}
	}
	return palette{
		heading:  color.New(color.Bold, color.FgBlue),
		title:    color.New(color.FgBlack),
		muted:    color.New(color.FgWhite),
		favorite: color.New(color.FgYellow),
		err:      color.New(color.FgRed),
	}
}

// Printer writes listings for the notebot commands.
type Printer struct {
	w       io.Writer
	palette palette
	err     error
}

func NewPrinter(w io.Writer, theme store.Theme) *Printer {
	return &Printer{w: w, palette: newPalette(theme)}
}

// printf keeps the first write error; later writes are skipped.
func (p *Printer) printf(c *color.Color, format string, args ...any) {
	if p.err != nil {
		return
	}
	var err error
	if c == nil {
		_, err = fmt.Fprintf(p.w, format, args...)
	} else {
		_, err = c.Fprintf(p.w, format, args...)
	}
	if err != nil {
		p.err = fmt.Errorf("failed to write to stdout: %w", err)
	}
}

func (p *Printer) flush() error {
	err := p.err
	p.err = nil
	return err
}

func (p *Printer) heading(text string) {
	p.printf(p.palette.heading, "%s\n", text)
}

func (p *Printer) star(favorite bool) string {
	if favorite {
		return p.palette.favorite.Sprint("★ ")
	}
	return "  "
}

func (p *Printer) Stats(state store.State) error {
	p.heading("Overview")
	p.printf(nil, "  Levels   %d\n", len(state.Levels.Data))
	p.printf(nil, "  Courses  %d\n", len(state.Courses.Data))
	p.printf(nil, "  Notes    %d\n", len(state.Notes.Data))
	p.printf(nil, "  Favorites %d notes, %d courses\n", len(state.Favorites.Notes), len(state.Favorites.Courses))
	p.printf(nil, "\n")
	p.recent(state, HomeRecentNotes)
	return p.flush()
}

func (p *Printer) Levels(state store.State) error {
	p.heading("Levels")
	if len(state.Levels.Data) == 0 {
		p.printf(p.palette.muted, "  No levels found\n")
	}
	for _, level := range state.Levels.Data {
		p.printf(p.palette.title, "  %s", level.Title)
		p.printf(p.palette.muted, "  [%s] %d courses\n", level.ID, state.CourseCount(level.ID))
	}
	return p.flush()
}

func (p *Printer) Courses(state store.State, courses []catalog.Course) error {
	p.heading("Courses")
	if len(courses) == 0 {
		p.printf(p.palette.muted, "  No courses found\n")
	}
	for _, course := range courses {
		p.course(state, course)
	}
	return p.flush()
}

func (p *Printer) course(state store.State, course catalog.Course) {
	p.printf(nil, "%s", p.star(state.IsFavorite(store.FavoriteCourses, course.ID)))
	p.printf(p.palette.title, "%s", course.Title)
	p.printf(p.palette.muted, "  [%s] %s, %d notes\n",
		course.ID, catalog.LevelTitle(state.Levels.Data, course.LevelID), state.NoteCount(course.ID))
}

func (p *Printer) Notes(state store.State, notes []catalog.Note) error {
	p.heading("Notes")
	if len(notes) == 0 {
		p.printf(p.palette.muted, "  No notes found\n")
	}
	for _, note := range notes {
		p.note(state, note)
	}
	return p.flush()
}

func (p *Printer) note(state store.State, note catalog.Note) {
	p.printf(nil, "%s", p.star(state.IsFavorite(store.FavoriteNotes, note.ID)))
	p.printf(p.palette.title, "%s", note.Title)
	p.printf(p.palette.muted, "  [%s] %s, %s",
		note.ID, catalog.CourseTitle(state.Courses.Data, note.CourseID), catalog.FileTypeOf(note.File))
	if !note.UpdatedAt.IsZero() {
		p.printf(p.palette.muted, ", updated %s", note.UpdatedAt.Format("2006-01-02"))
	}
	p.printf(nil, "\n")
}

func (p *Printer) Favorites(state store.State) error {
	p.heading("Favorite notes")
	if len(state.Favorites.Notes) == 0 {
		p.printf(p.palette.muted, "  No favorite notes\n")
	}
	for _, note := range state.Favorites.Notes {
		p.note(state, note)
	}
	p.heading("Favorite courses")
	if len(state.Favorites.Courses) == 0 {
		p.printf(p.palette.muted, "  No favorite courses\n")
	}
	for _, course := range state.Favorites.Courses {
		p.course(state, course)
	}
	return p.flush()
}

func (p *Printer) RecentLinks(state store.State) error {
	p.recent(state, -1)
	return p.flush()
}

func (p *Printer) recent(state store.State, n int) {
	p.heading("Recently opened")
	recent := state.RecentNotes(n)
	if len(recent) == 0 {
		p.printf(p.palette.muted, "  Nothing opened yet\n")
	}
	for _, note := range recent {
		p.printf(p.palette.title, "  %s", note.Title)
		p.printf(p.palette.muted, "  %s\n", state.Preferences.LinkFor(note))
	}
}

func (p *Printer) Preferences(preferences store.Preferences) error {
	p.heading("Preferences")
	p.printf(nil, "  theme                  %s\n", preferences.Theme)
	p.printf(nil, "  language               %s\n", preferences.Language)
	p.printf(nil, "  default_link_behavior  %s\n", preferences.DefaultLinkBehavior)
	return p.flush()
}

// Link prints the URL a note is opened with.
func (p *Printer) Link(note catalog.Note, url string) error {
	p.printf(p.palette.title, "%s", note.Title)
	p.printf(p.palette.muted, " (%s)\n", catalog.FileTypeOf(note.File))
	p.printf(nil, "%s\n", url)
	return p.flush()
}

// Message prints one plain line, such as the result of a favorites change.
func (p *Printer) Message(format string, args ...any) error {
	p.printf(nil, format+"\n", args...)
	return p.flush()
}

func (p *Printer) Error(message string) error {
	p.printf(p.palette.err, "%s\n", message)
	return p.flush()
}
