package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrop/internal/mathgen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		if grade != 0 && (grade < mathgen.MinGrade || grade > mathgen.MaxGrade) {
			return fmt.Errorf("grade must be between %d and %d", mathgen.MinGrade, mathgen.MaxGrade)
		}
		skip, _ := cmd.Flags().GetBool("skip-intro")
		return runGame(cmd, grade, skip)
	},
}

func init() {
	playCmd.Flags().Int("grade", 0, "Grade level 2-5 (defaults to the configured grade)")
	playCmd.Flags().Bool("skip-intro", false, "Go straight to the menu")
}
