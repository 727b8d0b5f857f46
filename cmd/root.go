package cmd

import (
	"github.com/danang/kuiskata/internal/history"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kuiskata",
	Short: "English-Indonesian vocabulary quiz",
	Long:  "KuisKata — terminal quiz app for building English-Indonesian vocabulary, one round at a time.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides KUISKATA_DB env var)")
	rootCmd.PersistentFlags().String("vocab", "", "Path to a custom vocabulary JSON file (overrides KUISKATA_VOCAB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then KUISKATA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, history.EnsureDir(p)
	}
	return history.DefaultDBPath()
}
