package store

import (
	"slices"

	"github.com/at-ishikawa/notebot/internal/catalog"
)

// Change tells listeners which parts of the state an action modified.
type Change struct {
	Section     Section
	Favorites   bool
	Preferences bool
	RecentLinks bool
}

// Reduce returns the state after applying action. It never modifies the slices of
// the given state in place.
func Reduce(state State, action Action) (State, Change) {
	switch a := action.(type) {
	case SetLoading:
		return reduceSection(state, a.Section, func(loading *bool, _ *string) {
			*loading = a.Loading
		}), Change{Section: a.Section}

	case SetData:
		switch a.Section {
		case SectionLevels:
			state.Levels = SectionState[catalog.Level]{Data: a.Levels}
		case SectionCourses:
			state.Courses = SectionState[catalog.Course]{Data: a.Courses}
		case SectionNotes:
			state.Notes = SectionState[catalog.Note]{Data: a.Notes}
		default:
			return state, Change{}
		}
		return state, Change{Section: a.Section}

	case SetError:
		return reduceSection(state, a.Section, func(loading *bool, message *string) {
			*loading = false
			*message = a.Message
		}), Change{Section: a.Section}

	case AddFavorite:
		switch a.Kind {
		case FavoriteNotes:
			if containsID(state.Favorites.Notes, a.Note.ID, noteID) {
				return state, Change{}
			}
			state.Favorites.Notes = appendCopy(state.Favorites.Notes, a.Note)
		case FavoriteCourses:
			if containsID(state.Favorites.Courses, a.Course.ID, courseID) {
				return state, Change{}
			}
			state.Favorites.Courses = appendCopy(state.Favorites.Courses, a.Course)
		default:
			return state, Change{}
		}
		return state, Change{Favorites: true}

	case RemoveFavorite:
		switch a.Kind {
		case FavoriteNotes:
			if !containsID(state.Favorites.Notes, a.ID, noteID) {
				return state, Change{}
			}
			state.Favorites.Notes = removeID(state.Favorites.Notes, a.ID, noteID)
		case FavoriteCourses:
			if !containsID(state.Favorites.Courses, a.ID, courseID) {
				return state, Change{}
			}
			state.Favorites.Courses = removeID(state.Favorites.Courses, a.ID, courseID)
		default:
			return state, Change{}
		}
		return state, Change{Favorites: true}

	case SetFavorites:
		favorites := a.Favorites
		if favorites.Notes == nil {
			favorites.Notes = []catalog.Note{}
		}
		if favorites.Courses == nil {
			favorites.Courses = []catalog.Course{}
		}
		state.Favorites = favorites
		return state, Change{Favorites: true}

	case UpdatePreferences:
		state.Preferences = state.Preferences.Merge(a.Patch)
		return state, Change{Preferences: true}

	case AddRecentLink:
		recent := make([]catalog.Note, 0, MaxRecentLinks)
		recent = append(recent, a.Note)
		for _, note := range state.RecentLinks {
			if len(recent) == MaxRecentLinks {
				break
			}
			if note.ID != a.Note.ID {
				recent = append(recent, note)
			}
		}
		state.RecentLinks = recent
		return state, Change{RecentLinks: true}
	}
	return state, Change{}
}

func reduceSection(state State, section Section, update func(loading *bool, message *string)) State {
	switch section {
	case SectionLevels:
		update(&state.Levels.Loading, &state.Levels.Error)
	case SectionCourses:
		update(&state.Courses.Loading, &state.Courses.Error)
	case SectionNotes:
		update(&state.Notes.Loading, &state.Notes.Error)
	}
	return state
}

func appendCopy[T any](items []T, item T) []T {
	copied := make([]T, 0, len(items)+1)
	copied = append(copied, items...)
	return append(copied, item)
}

func removeID[T any](items []T, id string, idOf func(T) string) []T {
	return slices.DeleteFunc(slices.Clone(items), func(item T) bool {
		return idOf(item) == id
	})
}
