package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/runera/runera-backend/internal/logger"
	"github.com/runera/runera-backend/internal/store"
)

// migrateCmd creates or updates every table the services use
func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store.Migrate(db); err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}

			logger.InfoCtx(cmd.Context(), "Database migrated", zap.Int("tables", len(store.Models())))
			fmt.Println("Database schema is up to date")
			return nil
		},
	}
}
