package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrop/internal/answer"
)

var checkCmd = &cobra.Command{
	Use:   "check <input> <expected>",
	Short: "Check an answer against the expected value",
	Long: `Check an answer the way the game does. Integers, decimals, fractions and
mixed numbers ("1 1/2") are compared by value. Exits non-zero when incorrect.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := answer.Validate(args[0], args[1])
		out := cmd.OutOrStdout()

		verdict := "incorrect"
		if res.Correct {
			verdict = "correct"
		}
		fmt.Fprintln(out, verdict)
		fmt.Fprintf(out, "  input:    %q\n", res.NormalizedInput)
		fmt.Fprintf(out, "  expected: %q\n", res.NormalizedAnswer)

		if !res.Correct {
			cmd.SilenceErrors = true
			return errSilent
		}
		return nil
	},
}
