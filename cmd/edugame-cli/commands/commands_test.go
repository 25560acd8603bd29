package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/edugame/internal/config"
	"github.com/vytor/edugame/internal/models"
)

func run(t *testing.T, cfg config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(cfg)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLevels(t *testing.T) {
	out, err := run(t, config.Config{}, "levels", "--max", "200", "--step", "100")
	require.NoError(t, err)

	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "│") {
			rows++
		}
	}
	// header plus exp 0, 100 and 200
	assert.Equal(t, 4, rows, out)
	assert.Contains(t, out, "200")
}

func TestLevels_ZeroStep(t *testing.T) {
	_, err := run(t, config.Config{}, "levels", "--step", "0")
	assert.Error(t, err)
}

func writePages(t *testing.T, dir string) {
	t.Helper()
	for _, c := range models.DefaultCourses {
		var grades strings.Builder
		grades.WriteString("var u = {alias: 'Ana Pérez', id: 1};")
		for i := 0; i < c.GradeCount; i++ {
			grades.WriteString(`<h1 class="strong"><span class="">7.0</span></h1>`)
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, c.Code+"_grades.html"), []byte(grades.String()), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, c.Code+"_attendance.html"), []byte("<th>Asistencia</th><td><h1>100%</h1>"), 0o644))
	}
}

func TestScore(t *testing.T) {
	dir := t.TempDir()
	writePages(t, dir)

	out, err := run(t, config.Config{}, "score", "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Ana Pérez")
	assert.Contains(t, out, "5200")
	assert.Contains(t, out, "28934")
	assert.Contains(t, out, "CSI0169")
}

func TestScore_MissingPage(t *testing.T) {
	_, err := run(t, config.Config{}, "score", "--dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CSI0168")
}

func TestScrape_RequiresPassword(t *testing.T) {
	t.Setenv(passwordEnv, "")

	_, err := run(t, config.Config{PortalBaseURL: "http://127.0.0.1:1"}, "scrape", "--username", "ana")
	require.Error(t, err)
	assert.Contains(t, err.Error(), passwordEnv)
}

func TestScrape_RequiresUsername(t *testing.T) {
	_, err := run(t, config.Config{}, "scrape")
	assert.Error(t, err)
}
