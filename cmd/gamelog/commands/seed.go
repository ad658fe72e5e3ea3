package commands

import (
	"gamelog/backend/internal/config"
	"gamelog/backend/internal/database"
	"gamelog/backend/internal/seed"
	"gamelog/backend/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// seedCmd populates the database with the demo catalogue.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample games, users, and reviews",
	Long: `Create the demo catalogue: a handful of games and users, a review for
each pairing worth demonstrating, and the game-user associations derived
from those reviews. The command is idempotent; rerunning it changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.Connect(config.AppConfig.DatabaseURL); err != nil {
			return err
		}

		logrus.WithField("database", config.AppConfig.DatabaseURL).Info("seeding")
		return seed.Run(store.New(database.DB))
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
