package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

This command ensures the local database has all the tables the
reconciliation engine needs.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			slog.Info("Running database migrations", "database", viper.GetString("database.path"))

			store, err := initStorage(cmd.Context())
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			defer func() { _ = store.Close() }()

			slog.Info("Database schema up to date")
			return nil
		},
	}
}
