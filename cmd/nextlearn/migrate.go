package main

import (
	"fmt"

	"github.com/nextlearn/catalog/internal/config"
	"github.com/nextlearn/catalog/internal/database"
	"github.com/nextlearn/catalog/internal/logger"
	"github.com/nextlearn/catalog/internal/repositories"
	"github.com/spf13/cobra"
)

var rollbackSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations to the MySQL catalog",
	Long: `Apply every pending migration, creating and seeding the courses table.

With --down N the last N migrations are reverted instead.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().IntVar(&rollbackSteps, "down", 0, "Revert the last N migrations")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init("info"); err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return err
	}
	defer closeQuietly(db, logger.Logger)

	if rollbackSteps > 0 {
		if err := database.RollbackMigrations(db, rollbackSteps, logger.Logger); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Reverted %d migration(s)\n", rollbackSteps)
		return nil
	}

	if err := database.RunMigrations(db, logger.Logger); err != nil {
		return err
	}

	count, err := repositories.NewCourseRepository(db, logger.Logger).Count(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied, catalog has %d courses\n", count)
	return nil
}
