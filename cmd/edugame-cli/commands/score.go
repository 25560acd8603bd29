package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vytor/edugame/internal/config"
	"github.com/vytor/edugame/internal/extract"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/portal"
	"github.com/vytor/edugame/internal/services"
)

func newScoreCmd(cfg config.Config) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "score --dir <pages>",
		Short: "Scores saved portal pages without logging in.",
		Long:  "Scores saved portal pages without logging in. For every tracked course the directory must hold <CODE>_grades.html and <CODE>_attendance.html.",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := portal.LoadSettings(cfg.PortalConfigFile)
			if err != nil {
				return err
			}

			pages, err := readPages(dir, settings.Courses)
			if err != nil {
				return err
			}

			student, scores := services.ScorePages(extract.NewLocator(settings.Markers), settings.Courses, pages)
			renderStudent(cmd.OutOrStdout(), student)
			renderCourses(cmd.OutOrStdout(), scores)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory holding the saved pages.")
	return cmd
}

func readPages(dir string, courses []models.Course) ([]models.RawCoursePage, error) {
	pages := make([]models.RawCoursePage, 0, len(courses))
	for _, c := range courses {
		grades, err := os.ReadFile(filepath.Join(dir, c.Code+"_grades.html"))
		if err != nil {
			return nil, fmt.Errorf("read grades page for %s: %w", c.Code, err)
		}
		attendance, err := os.ReadFile(filepath.Join(dir, c.Code+"_attendance.html"))
		if err != nil {
			return nil, fmt.Errorf("read attendance page for %s: %w", c.Code, err)
		}
		pages = append(pages, models.RawCoursePage{
			Code:           c.Code,
			GradesText:     string(grades),
			AttendanceText: string(attendance),
		})
	}
	return pages, nil
}
