package main

import (
	"fmt"
	"os"

	"topic-quiz/internal/config"
	"topic-quiz/internal/database"
	"topic-quiz/internal/logger"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

func main() {
	rootCommand := cobra.Command{
		Use:           "migrate",
		Short:         "Apply or roll back the attempt history schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.AddCommand(newUpCommand(), newDownCommand())

	if err := rootCommand.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openHistoryDB()
			if err != nil {
				return err
			}
			defer db.Close()
			return database.RunMigrations(db.DB)
		},
	}
}

func newDownCommand() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openHistoryDB()
			if err != nil {
				return err
			}
			defer db.Close()
			return database.RollbackMigrations(db.DB, steps)
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")
	return cmd
}

func openHistoryDB() (*sqlx.DB, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return database.NewSQLXDB(cfg.History)
}
