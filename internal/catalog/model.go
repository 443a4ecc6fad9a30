// Package catalog defines the level → course → note entities served by the notes
// backend and the read-only views computed over them.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Ref is the id of a referenced entity.
// The backend sends a reference either as an id string or as the embedded object,
// and both are decoded into the id.
type Ref string

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if data[0] == '{' {
		var embedded struct {
			ID string `json:"_id"`
		}
		if err := json.Unmarshal(data, &embedded); err != nil {
			return fmt.Errorf("json.Unmarshal(embedded reference) > %w", err)
		}
		*r = Ref(embedded.ID)
		return nil
	}

	var id string
	if err := json.Unmarshal(data, &id); err != nil {
		return fmt.Errorf("json.Unmarshal(reference) > %w", err)
	}
	*r = Ref(id)
	return nil
}

func (r Ref) String() string {
	return string(r)
}

type Level struct {
	ID    string `json:"_id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
}

type Course struct {
	ID        string    `json:"_id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	LevelID   Ref       `json:"level" yaml:"level_id"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

type Note struct {
	ID        string    `json:"_id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	File      string    `json:"file" yaml:"file"`
	CourseID  Ref       `json:"course" yaml:"course_id"`
	LevelID   Ref       `json:"level" yaml:"level_id"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" yaml:"updated_at"`
}
