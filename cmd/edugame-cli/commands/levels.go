package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/vytor/edugame/internal/gamification"
)

func newLevelsCmd() *cobra.Command {
	var maxExp, step uint64

	cmd := &cobra.Command{
		Use:   "levels [--max N] [--step S]",
		Short: "Prints the level reached at each experience total.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if step == 0 {
				return fmt.Errorf("--step must be positive")
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Exp", "Level"})
			for exp := uint64(0); exp <= maxExp; exp += step {
				t.AppendRow(table.Row{exp, gamification.LevelFor(exp)})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().Uint64Var(&maxExp, "max", 10000, "Largest experience total to print.")
	cmd.Flags().Uint64Var(&step, "step", 500, "Experience between rows.")
	return cmd
}
