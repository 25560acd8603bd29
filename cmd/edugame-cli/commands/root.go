package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/vytor/edugame/internal/config"
	"github.com/vytor/edugame/internal/models"
)

// NewRootCmd builds the command tree around cfg.
func NewRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "edugame-cli",
		Short:         "edugame-cli scrapes and scores U-Campus students from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newScrapeCmd(cfg), newScoreCmd(cfg), newLevelsCmd())
	return root
}

func ExecuteContext(ctx context.Context, cfg config.Config) {
	if err := NewRootCmd(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func renderStudent(out io.Writer, s models.Student) {
	t := newTable(out)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Name", s.Name},
		{"Mean", fmt.Sprintf("%.2f", s.Mean)},
		{"Grade points", s.Grades},
		{"Attendance", s.Assist},
		{"Exp", s.Exp},
		{"Level", s.Level},
		{"Bonus", s.Bonus},
		{"Penalty", s.Penalty},
		{"Coins", s.Coins},
	})
	t.Render()
}

func renderCourses(out io.Writer, scores []models.CourseScore) {
	if len(scores) == 0 {
		return
	}
	t := newTable(out)
	t.AppendHeader(table.Row{"Course", "Mean", "Attendance"})
	for _, c := range scores {
		t.AppendRow(table.Row{c.Code, fmt.Sprintf("%.2f", c.Mean), fmt.Sprintf("%.0f%%", c.Attendance)})
	}
	t.Render()
}
