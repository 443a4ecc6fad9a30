package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestCoursesForLevel(t *testing.T) {
	courses := []Course{
		{ID: "C1", LevelID: "L1"},
		{ID: "C2", LevelID: "L2"},
		{ID: "C3", LevelID: "L1"},
	}

	assert.Equal(t, []Course{courses[0], courses[2]}, CoursesForLevel(courses, "L1"))
	assert.Equal(t, courses, CoursesForLevel(courses, ""))
	assert.Empty(t, CoursesForLevel(courses, "L9"))
	assert.Equal(t, 2, CourseCountForLevel(courses, "L1"))
	assert.Equal(t, 0, CourseCountForLevel(courses, "L9"))
}

func TestNotesForCourse(t *testing.T) {
	notes := []Note{
		{ID: "N1", CourseID: "C1"},
		{ID: "N2", CourseID: "C2"},
	}

	assert.Equal(t, []Note{notes[1]}, NotesForCourse(notes, "C2"))
	assert.Equal(t, notes, NotesForCourse(notes, ""))
	assert.Equal(t, 1, NoteCountForCourse(notes, "C1"))
}

func TestTitles(t *testing.T) {
	levels := []Level{{ID: "L1", Title: "Beginner"}}
	courses := []Course{{ID: "C1", Title: "Algebra"}}

	assert.Equal(t, "Beginner", LevelTitle(levels, "L1"))
	assert.Equal(t, UnknownLevel, LevelTitle(levels, "L2"))
	assert.Equal(t, "Algebra", CourseTitle(courses, "C1"))
	assert.Equal(t, UnknownCourse, CourseTitle(courses, ""))
}

func TestSortCourses(t *testing.T) {
	courses := []Course{
		{ID: "C1", Title: "beta", CreatedAt: day(1)},
		{ID: "C2", Title: "Alpha", CreatedAt: day(3)},
		{ID: "C3", Title: "gamma", CreatedAt: day(2)},
	}
	notes := []Note{
		{ID: "N1", CourseID: "C3"},
		{ID: "N2", CourseID: "C3"},
		{ID: "N3", CourseID: "C1"},
	}

	tests := []struct {
		name  string
		order CourseOrder
		want  []string
	}{
		{name: "title", order: CourseOrderTitle, want: []string{"C2", "C1", "C3"}},
		{name: "newest", order: CourseOrderNewest, want: []string{"C2", "C3", "C1"}},
		{name: "notes", order: CourseOrderNotes, want: []string{"C3", "C1", "C2"}},
		{name: "unknown keeps order", order: "other", want: []string{"C1", "C2", "C3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortCourses(courses, tt.order, notes)
			ids := make([]string, 0, len(got))
			for _, course := range got {
				ids = append(ids, course.ID)
			}
			assert.Equal(t, tt.want, ids)
			assert.Equal(t, "C1", courses[0].ID, "input must not be reordered")
		})
	}
}

func TestSortNotes(t *testing.T) {
	notes := []Note{
		{ID: "N1", Title: "b", CreatedAt: day(2)},
		{ID: "N2", Title: "a", CreatedAt: day(1)},
		{ID: "N3", Title: "c", CreatedAt: day(3)},
	}

	tests := []struct {
		name  string
		order NoteOrder
		want  []string
	}{
		{name: "newest", order: NoteOrderNewest, want: []string{"N3", "N1", "N2"}},
		{name: "oldest", order: NoteOrderOldest, want: []string{"N2", "N1", "N3"}},
		{name: "title", order: NoteOrderTitle, want: []string{"N2", "N1", "N3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SortNotes(notes, tt.order)
			ids := make([]string, 0, len(got))
			for _, note := range got {
				ids = append(ids, note.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestParseOrders(t *testing.T) {
	order, err := ParseCourseOrder("notes")
	assert.NoError(t, err)
	assert.Equal(t, CourseOrderNotes, order)

	_, err = ParseCourseOrder("oldest")
	assert.Error(t, err)

	noteOrder, err := ParseNoteOrder("oldest")
	assert.NoError(t, err)
	assert.Equal(t, NoteOrderOldest, noteOrder)

	_, err = ParseNoteOrder("notes")
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	levels := []Level{{ID: "L1", Title: "Beginner"}}
	courses := []Course{{ID: "C1", Title: "Algebra", LevelID: "L1"}, {ID: "C2", Title: "Physics"}}
	notes := []Note{
		{ID: "N1", Title: "Chapter 1", CourseID: "C1", LevelID: "L1"},
		{ID: "N2", Title: "Vectors", CourseID: "C2"},
		{ID: "N3", Title: "Algebraic identities", CourseID: "C2"},
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "blank query", query: "  ", want: nil},
		{name: "note title", query: "VECTOR", want: []string{"N2"}},
		{name: "course title", query: "algebra", want: []string{"N1", "N3"}},
		{name: "level title", query: "begin", want: []string{"N1"}},
		{name: "no match", query: "chemistry", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, note := range Search(tt.query, notes, courses, levels) {
				ids = append(ids, note.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFileTypeOf(t *testing.T) {
	tests := []struct {
		url  string
		want FileType
	}{
		{url: "", want: FileTypeUnknown},
		{url: "https://docs.google.com/document/d/1/view", want: FileTypeDocument},
		{url: "https://docs.google.com/spreadsheets/d/1/view", want: FileTypeSheet},
		{url: "https://docs.google.com/presentation/d/1/view", want: FileTypeSlide},
		{url: "https://example.com/ch1.pdf", want: FileTypePDF},
		{url: "https://drive.google.com/file/d/1/view", want: FileTypeFile},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, FileTypeOf(tt.url))
		})
	}
}

func TestBrowserURL(t *testing.T) {
	assert.Equal(t, "https://drive.google.com/file/d/1/edit", BrowserURL("https://drive.google.com/file/d/1/view"))
	assert.Equal(t, "https://example.com/a.pdf", BrowserURL("https://example.com/a.pdf"))
}
