package portal_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/edugame/internal/extract"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/portal"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portal.json5")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSettings_EmptyPathGivesDefaults(t *testing.T) {
	got, err := portal.LoadSettings("")
	require.NoError(t, err)
	if diff := cmp.Diff(portal.DefaultSettings(), got); diff != "" {
		t.Errorf("LoadSettings(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadSettings_MergesOverDefaults(t *testing.T) {
	path := writeSettings(t, `{
		// the portal renamed its exam column
		markers: { exam_token: "Examen Final" },
		courses: [
			{ code: "CSI0200", name: "Redes", grade_count: 4 },
		],
	}`)

	got, err := portal.LoadSettings(path)
	require.NoError(t, err)

	want := extract.DefaultMarkers()
	want.ExamToken = "Examen Final"
	assert.Equal(t, want, got.Markers)
	assert.Equal(t, []models.Course{{Code: "CSI0200", Name: "Redes", GradeCount: 4}}, got.Courses)
}

func TestLoadSettings_Errors(t *testing.T) {
	_, err := portal.LoadSettings(filepath.Join(t.TempDir(), "missing.json5"))
	assert.Error(t, err)

	_, err = portal.LoadSettings(writeSettings(t, `{ markers: `))
	assert.Error(t, err)

	_, err = portal.LoadSettings(writeSettings(t, `{ courses: [{ name: "no code" }] }`))
	assert.Error(t, err)
}

func TestDefaultSettings_DoesNotAliasCourseList(t *testing.T) {
	s := portal.DefaultSettings()
	s.Courses[0].Code = "CHANGED"

	assert.Equal(t, "CSI0168", models.DefaultCourses[0].Code)
}
