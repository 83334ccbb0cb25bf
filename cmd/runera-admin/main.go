package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/runera/runera-backend/internal/config"
	"github.com/runera/runera-backend/internal/logger"
)

var (
	configFile string
	envPath    string

	cfg *config.AdminConfig
	db  *gorm.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "runera-admin",
		Short:         "Operational commands for the RUNERA backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.ChdirRepoRoot()

			var err error
			cfg, err = config.LoadAdminConfig(configFile, envPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			err = logger.Initialize(logger.Config{
				Debug:           cfg.Debug,
				SentryDSN:       cfg.SentryDSN,
				BreadcrumbLevel: zapcore.InfoLevel,
				Service:         "runera-admin",
			})
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			db, err = gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if db != nil {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			}
			logger.Flush(2 * time.Second)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", "config/", "Path to environment files")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedEventCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
