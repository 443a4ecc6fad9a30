// Package testutil provides shared test helpers for config files and a fake catalog API.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/notebot/internal/catalog"
)

// SetupTestConfig creates a config file pointing at baseURL with a file storage
// directory under tmpDir. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, baseURL string) string {
	t.Helper()

	storageDir := filepath.Join(tmpDir, "storage")
	require.NoError(t, os.MkdirAll(storageDir, 0755))

	configContent := fmt.Sprintf(`api:
  base_url: %s
  timeout: 2s
  retry_attempts: 0
storage:
  backend: file
  directory: %s
`, baseURL, storageDir)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupBrokenConfig creates a config file that cannot be parsed.
func SetupBrokenConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("api: [unterminated"), 0644))
	return cfgPath
}

// Catalog is the data served by NewCatalogServer.
// Requests whose path starts with FailPath answer 500 with FailMessage.
type Catalog struct {
	Levels      []catalog.Level
	Courses     []catalog.Course
	Notes       []catalog.Note
	FailPath    string
	FailMessage string
}

// NewCatalogServer starts an httptest server implementing the catalog endpoints.
func NewCatalogServer(t *testing.T, data Catalog) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /levels", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, data.Levels)
	})
	mux.HandleFunc("GET /courses", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, data.Courses)
	})
	mux.HandleFunc("GET /courses_level/{levelId}", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, catalog.CoursesForLevel(data.Courses, r.PathValue("levelId")))
	})
	mux.HandleFunc("GET /notes", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, data.Notes)
	})
	mux.HandleFunc("GET /notes_course/{courseId}", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, catalog.NotesForCourse(data.Notes, r.PathValue("courseId")))
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if data.FailPath != "" && strings.HasPrefix(r.URL.Path, data.FailPath) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": data.FailMessage})
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func writeData[T any](w http.ResponseWriter, items []T) {
	if items == nil {
		items = []T{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string][]T{"data": items})
}
