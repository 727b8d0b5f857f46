package cmd

import (
	"context"
	"fmt"

	"github.com/danang/kuiskata/internal/history"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := history.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open history store: %w", err)
		}
		defer st.Close()

		results, skipped, err := st.Load(context.Background())
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}

		stats := history.Aggregate(results)
		fmt.Printf("Quizzes taken:  %d\n", stats.TotalQuizzes)
		fmt.Printf("Words answered: %d\n", stats.TotalWords)
		fmt.Printf("Average score:  %d%%\n", stats.AverageScore)
		if skipped > 0 {
			fmt.Printf("Skipped %d corrupt record(s)\n", skipped)
		}
		return nil
	},
}
