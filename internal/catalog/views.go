package catalog

import (
	"fmt"
	"slices"
	"strings"
)

const (
	UnknownLevel  = "Unknown Level"
	UnknownCourse = "Unknown Course"
)

// CourseOrder is the order of a course listing.
type CourseOrder string

const (
	CourseOrderTitle  CourseOrder = "title"
	CourseOrderNewest CourseOrder = "newest"
	CourseOrderNotes  CourseOrder = "notes"
)

var AllCourseOrders = []CourseOrder{CourseOrderTitle, CourseOrderNewest, CourseOrderNotes}

// NoteOrder is the order of a note listing.
type NoteOrder string

const (
	NoteOrderNewest NoteOrder = "newest"
	NoteOrderTitle  NoteOrder = "title"
	NoteOrderOldest NoteOrder = "oldest"
)

var AllNoteOrders = []NoteOrder{NoteOrderNewest, NoteOrderTitle, NoteOrderOldest}

func ParseCourseOrder(value string) (CourseOrder, error) {
	for _, order := range AllCourseOrders {
		if value == string(order) {
			return order, nil
		}
	}
	return "", fmt.Errorf("invalid course order: %s", value)
}

func ParseNoteOrder(value string) (NoteOrder, error) {
	for _, order := range AllNoteOrders {
		if value == string(order) {
			return order, nil
		}
	}
	return "", fmt.Errorf("invalid note order: %s", value)
}

// CoursesForLevel returns the courses of a level, or all courses when levelID is empty.
func CoursesForLevel(courses []Course, levelID string) []Course {
	if levelID == "" {
		return courses
	}
	filtered := make([]Course, 0, len(courses))
	for _, course := range courses {
		if string(course.LevelID) == levelID {
			filtered = append(filtered, course)
		}
	}
	return filtered
}

// NotesForCourse returns the notes of a course, or all notes when courseID is empty.
func NotesForCourse(notes []Note, courseID string) []Note {
	if courseID == "" {
		return notes
	}
	filtered := make([]Note, 0, len(notes))
	for _, note := range notes {
		if string(note.CourseID) == courseID {
			filtered = append(filtered, note)
		}
	}
	return filtered
}

func CourseCountForLevel(courses []Course, levelID string) int {
	count := 0
	for _, course := range courses {
		if string(course.LevelID) == levelID {
			count++
		}
	}
	return count
}

func NoteCountForCourse(notes []Note, courseID string) int {
	count := 0
	for _, note := range notes {
		if string(note.CourseID) == courseID {
			count++
		}
	}
	return count
}

func LevelTitle(levels []Level, levelID Ref) string {
	for _, level := range levels {
		if level.ID == string(levelID) {
			return level.Title
		}
	}
	return UnknownLevel
}

func CourseTitle(courses []Course, courseID Ref) string {
	for _, course := range courses {
		if course.ID == string(courseID) {
			return course.Title
		}
	}
	return UnknownCourse
}

// SortCourses returns a sorted copy of courses.
// notes is only used by CourseOrderNotes, which puts courses with more notes first.
func SortCourses(courses []Course, order CourseOrder, notes []Note) []Course {
	sorted := slices.Clone(courses)
	switch order {
	case CourseOrderTitle:
		slices.SortStableFunc(sorted, func(a, b Course) int {
			return compareTitles(a.Title, b.Title)
		})
	case CourseOrderNewest:
		slices.SortStableFunc(sorted, func(a, b Course) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case CourseOrderNotes:
		counts := make(map[string]int, len(sorted))
		for _, note := range notes {
			counts[string(note.CourseID)]++
		}
		slices.SortStableFunc(sorted, func(a, b Course) int {
			return counts[b.ID] - counts[a.ID]
		})
	}
	return sorted
}

// SortNotes returns a sorted copy of notes.
func SortNotes(notes []Note, order NoteOrder) []Note {
	sorted := slices.Clone(notes)
	switch order {
	case NoteOrderTitle:
		slices.SortStableFunc(sorted, func(a, b Note) int {
			return compareTitles(a.Title, b.Title)
		})
	case NoteOrderNewest:
		slices.SortStableFunc(sorted, func(a, b Note) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case NoteOrderOldest:
		slices.SortStableFunc(sorted, func(a, b Note) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	}
	return sorted
}

func compareTitles(a, b string) int {
	if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// Search returns the notes whose title, course title or level title contains query,
// case-insensitively. A blank query matches nothing.
func Search(query string, notes []Note, courses []Course, levels []Level) []Note {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	courseTitles := make(map[string]string, len(courses))
	for _, course := range courses {
		courseTitles[course.ID] = strings.ToLower(course.Title)
	}
	levelTitles := make(map[string]string, len(levels))
	for _, level := range levels {
		levelTitles[level.ID] = strings.ToLower(level.Title)
	}

	var results []Note
	for _, note := range notes {
		if strings.Contains(strings.ToLower(note.Title), query) {
			results = append(results, note)
			continue
		}
		if title, ok := courseTitles[string(note.CourseID)]; ok && strings.Contains(title, query) {
			results = append(results, note)
			continue
		}
		if title, ok := levelTitles[string(note.LevelID)]; ok && strings.Contains(title, query) {
			results = append(results, note)
		}
	}
	return results
}
