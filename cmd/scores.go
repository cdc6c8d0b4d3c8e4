package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrop/internal/mathgen"
	"github.com/abhisek/mathdrop/internal/store"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the local leaderboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		limit, _ := cmd.Flags().GetInt("limit")
		if grade != 0 && (grade < mathgen.MinGrade || grade > mathgen.MaxGrade) {
			return fmt.Errorf("grade must be 0 (all) or between %d and %d", mathgen.MinGrade, mathgen.MaxGrade)
		}
		if limit < 1 {
			return fmt.Errorf("limit must be at least 1")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, _, err := openStore(cmd, cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		scores, err := st.HighScoreRepo().Leaderboard(cmd.Context(), grade, limit)
		if err != nil {
			return fmt.Errorf("load leaderboard: %w", err)
		}
		return printScores(cmd.OutOrStdout(), scores)
	},
}

func printScores(w io.Writer, scores []store.HighScore) error {
	if len(scores) == 0 {
		_, err := fmt.Fprintln(w, "No scores yet.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tSCORE\tGRADE\tLEVEL\tACCURACY\tDATE")
	for i, hs := range scores {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%.0f%%\t%s\n",
			i+1, hs.PlayerName, hs.Score, hs.Grade, hs.Level, hs.Accuracy,
			hs.CreatedAt.Local().Format("2006-01-02"))
	}
	return tw.Flush()
}

func init() {
	scoresCmd.Flags().Int("grade", 0, "Only show this grade (0 for all)")
	scoresCmd.Flags().Int("limit", 10, "Number of entries")
}
