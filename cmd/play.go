package cmd

import (
	engine "github.com/danang/kuiskata/internal/quiz"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz round directly",
	Long:  "Skips the menu and opens a round at the given level (quick, easy, medium, hard).",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("level")
		level := engine.ParseLevel(name)
		return runApp(cmd, &level)
	},
}

func init() {
	playCmd.Flags().String("level", "quick", "Difficulty level: quick, easy, medium or hard")
}
