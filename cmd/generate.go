package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrop/internal/mathgen"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print generated equations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		level, _ := cmd.Flags().GetInt("level")
		count, _ := cmd.Flags().GetInt("count")
		asJSON, _ := cmd.Flags().GetBool("json")

		if grade < mathgen.MinGrade || grade > mathgen.MaxGrade {
			return fmt.Errorf("grade must be between %d and %d", mathgen.MinGrade, mathgen.MaxGrade)
		}
		if level < 1 {
			return fmt.Errorf("level must be at least 1")
		}
		if count < 1 {
			return fmt.Errorf("count must be at least 1")
		}

		gen := mathgen.New(grade, mathgen.WithLevel(level))
		equations := make([]mathgen.Equation, count)
		for i := range equations {
			equations[i] = gen.Generate()
		}
		return printEquations(cmd.OutOrStdout(), equations, asJSON)
	},
}

func printEquations(w io.Writer, equations []mathgen.Equation, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(equations)
	}
	for _, eq := range equations {
		if _, err := fmt.Fprintf(w, "%s = %s\n", eq.Text, eq.Answer); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	generateCmd.Flags().Int("grade", mathgen.MinGrade, "Grade level 2-5")
	generateCmd.Flags().Int("level", 1, "Difficulty level (1 and up)")
	generateCmd.Flags().Int("count", 10, "Number of equations")
	generateCmd.Flags().Bool("json", false, "Output JSON")
}
