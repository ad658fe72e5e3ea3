package commands

import (
	"fmt"
	"os"

	"gamelog/backend/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gamelog",
	Short: "Gamelog - games, users, reviews, and the links between them",
	Long: `Gamelog maintains a catalogue of games, the users who play them, and
their reviews. Each review belongs to one game and one user; a join table
keyed by (game_id, user_id) records which users have logged which games.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadConfig(); err != nil {
			return err
		}

		level, err := logrus.ParseLevel(config.AppConfig.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", config.AppConfig.LogLevel, err)
		}
		logrus.SetLevel(level)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
