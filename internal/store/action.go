package store

import (
	"github.com/at-ishikawa/notebot/internal/catalog"
)

// ActionType is the wire tag of an action.
type ActionType string

const (
	ActionSetLoading        ActionType = "SET_LOADING"
	ActionSetData           ActionType = "SET_DATA"
	ActionSetError          ActionType = "SET_ERROR"
	ActionAddFavorite       ActionType = "ADD_FAVORITE"
	ActionRemoveFavorite    ActionType = "REMOVE_FAVORITE"
	ActionSetFavorites      ActionType = "SET_FAVORITES"
	ActionUpdatePreferences ActionType = "UPDATE_PREFERENCES"
	ActionAddRecentLink     ActionType = "ADD_RECENT_LINK"
)

// Action is a mutation request. The set of actions is closed: only the types in
// this file implement it.
type Action interface {
	Type() ActionType
	action()
}

type SetLoading struct {
	Section Section
	Loading bool
}

// SetData replaces the collection of Section with the matching field.
type SetData struct {
	Section Section
	Levels  []catalog.Level
	Courses []catalog.Course
	Notes   []catalog.Note
}

func SetLevels(levels []catalog.Level) SetData {
	return SetData{Section: SectionLevels, Levels: levels}
}

func SetCourses(courses []catalog.Course) SetData {
	return SetData{Section: SectionCourses, Courses: courses}
}

func SetNotes(notes []catalog.Note) SetData {
	return SetData{Section: SectionNotes, Notes: notes}
}

type SetError struct {
	Section Section
	Message string
}

// AddFavorite adds Note or Course depending on Kind.
type AddFavorite struct {
	Kind   FavoriteKind
	Note   catalog.Note
	Course catalog.Course
}

func FavoriteNote(note catalog.Note) AddFavorite {
	return AddFavorite{Kind: FavoriteNotes, Note: note}
}

func FavoriteCourse(course catalog.Course) AddFavorite {
	return AddFavorite{Kind: FavoriteCourses, Course: course}
}

type RemoveFavorite struct {
	Kind FavoriteKind
	ID   string
}

type SetFavorites struct {
	Favorites FavoriteSet
}

type UpdatePreferences struct {
	Patch PreferencesPatch
}

type AddRecentLink struct {
	Note catalog.Note
}

func (SetLoading) Type() ActionType        { return ActionSetLoading }
func (SetData) Type() ActionType           { return ActionSetData }
func (SetError) Type() ActionType          { return ActionSetError }
func (AddFavorite) Type() ActionType       { return ActionAddFavorite }
func (RemoveFavorite) Type() ActionType    { return ActionRemoveFavorite }
func (SetFavorites) Type() ActionType      { return ActionSetFavorites }
func (UpdatePreferences) Type() ActionType { return ActionUpdatePreferences }
func (AddRecentLink) Type() ActionType     { return ActionAddRecentLink }

func (SetLoading) action()        {}
func (SetData) action()           {}
func (SetError) action()          {}
func (AddFavorite) action()       {}
func (RemoveFavorite) action()    {}
func (SetFavorites) action()      {}
func (UpdatePreferences) action() {}
func (AddRecentLink) action()     {}
