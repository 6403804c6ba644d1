package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goran-ethernal/DomainIndexor/internal/common"
	"github.com/goran-ethernal/DomainIndexor/internal/config"
	"github.com/goran-ethernal/DomainIndexor/internal/db"
	"github.com/goran-ethernal/DomainIndexor/internal/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log := componentLogger(cfg, common.ComponentStore)
		defer func() {
			_ = log.Close()
		}()

		database, err := db.NewSQLiteDBFromConfig(cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
		defer database.Close()

		if err := migrations.RunMigrationsDB(log, database); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "migrations applied to %s\n", cfg.DB.Path)
		return nil
	},
}
