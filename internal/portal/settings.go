package portal

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/titanous/json5"
	"github.com/vytor/edugame/internal/extract"
	"github.com/vytor/edugame/internal/models"
)

// Settings describe what to fetch and how to read it. Everything here
// tracks the portal's markup and term calendar, so it can be overridden
// from a file without a rebuild.
type Settings struct {
	Markers extract.Markers `json:"markers"`
	Courses []models.Course `json:"courses"`
}

func DefaultSettings() Settings {
	courses := make([]models.Course, len(models.DefaultCourses))
	copy(courses, models.DefaultCourses)
	return Settings{
		Markers: extract.DefaultMarkers(),
		Courses: courses,
	}
}

// LoadSettings reads a JSON5 file and merges it over the defaults. Fields
// absent from the file keep their default values; a non-empty course list
// replaces the default list.
func LoadSettings(path string) (Settings, error) {
	out := DefaultSettings()
	if path == "" {
		return out, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("read portal settings: %w", err)
	}

	var override Settings
	if err := json5.Unmarshal(data, &override); err != nil {
		return out, fmt.Errorf("parse portal settings %s: %w", path, err)
	}
	if err := mergo.Merge(&out, override, mergo.WithOverride); err != nil {
		return out, fmt.Errorf("merge portal settings: %w", err)
	}

	for i, c := range out.Courses {
		if c.Code == "" {
			return out, fmt.Errorf("portal settings: course %d has no code", i)
		}
		if c.GradeCount < 0 {
			return out, fmt.Errorf("portal settings: course %s has negative grade_count", c.Code)
		}
	}
	return out, nil
}
