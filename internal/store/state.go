// Package store holds the client state: the fetched catalog sections, favorites,
// preferences and recently opened notes. All mutations go through Dispatch.
package store

import (
	"github.com/at-ishikawa/notebot/internal/catalog"
)

// MaxRecentLinks is the capacity of the recent links list.
const MaxRecentLinks = 10

type Section string

const (
	SectionLevels  Section = "levels"
	SectionCourses Section = "courses"
	SectionNotes   Section = "notes"
)

var AllSections = []Section{SectionLevels, SectionCourses, SectionNotes}

// FavoriteKind selects the favorites list an action applies to.
type FavoriteKind string

const (
	FavoriteNotes   FavoriteKind = "notes"
	FavoriteCourses FavoriteKind = "courses"
)

// SectionState is the fetch state of one remote collection.
// An empty Error means the last fetch did not fail.
type SectionState[T any] struct {
	Data    []T
	Loading bool
	Error   string
}

type FavoriteSet struct {
	Notes   []catalog.Note   `json:"notes" yaml:"notes"`
	Courses []catalog.Course `json:"courses" yaml:"courses"`
}

type State struct {
	Levels      SectionState[catalog.Level]
	Courses     SectionState[catalog.Course]
	Notes       SectionState[catalog.Note]
	Favorites   FavoriteSet
	Preferences Preferences
	RecentLinks []catalog.Note
}

// InitialState is the state of a freshly started client.
func InitialState() State {
	return State{
		Levels:  SectionState[catalog.Level]{Data: []catalog.Level{}},
		Courses: SectionState[catalog.Course]{Data: []catalog.Course{}},
		Notes:   SectionState[catalog.Note]{Data: []catalog.Note{}},
		Favorites: FavoriteSet{
			Notes:   []catalog.Note{},
			Courses: []catalog.Course{},
		},
		Preferences: DefaultPreferences(),
		RecentLinks: []catalog.Note{},
	}
}

func (s State) IsFavorite(kind FavoriteKind, id string) bool {
	switch kind {
	case FavoriteNotes:
		return containsID(s.Favorites.Notes, id, noteID)
	case FavoriteCourses:
		return containsID(s.Favorites.Courses, id, courseID)
	}
	return false
}

func (s State) CourseCount(levelID string) int {
	return catalog.CourseCountForLevel(s.Courses.Data, levelID)
}

func (s State) NoteCount(courseID string) int {
	return catalog.NoteCountForCourse(s.Notes.Data, courseID)
}

// RecentNotes returns at most n of the most recently opened notes.
func (s State) RecentNotes(n int) []catalog.Note {
	if n < 0 || n >= len(s.RecentLinks) {
		return s.RecentLinks
	}
	return s.RecentLinks[:n]
}

// SectionError returns the error recorded for a section.
func (s State) SectionError(section Section) string {
	switch section {
	case SectionLevels:
		return s.Levels.Error
	case SectionCourses:
		return s.Courses.Error
	case SectionNotes:
		return s.Notes.Error
	}
	return ""
}

// SectionLoading reports whether a fetch is in flight for a section.
func (s State) SectionLoading(section Section) bool {
	switch section {
	case SectionLevels:
		return s.Levels.Loading
	case SectionCourses:
		return s.Courses.Loading
	case SectionNotes:
		return s.Notes.Loading
	}
	return false
}

func noteID(note catalog.Note) string       { return note.ID }
func courseID(course catalog.Course) string { return course.ID }

func containsID[T any](items []T, id string, idOf func(T) string) bool {
	for _, item := range items {
		if idOf(item) == id {
			return true
		}
	}
	return false
}
