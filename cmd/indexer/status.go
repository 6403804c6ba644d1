package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goran-ethernal/DomainIndexor/internal/common"
	"github.com/goran-ethernal/DomainIndexor/internal/config"
	"github.com/goran-ethernal/DomainIndexor/internal/db"
	"github.com/goran-ethernal/DomainIndexor/internal/migrations"
	"github.com/goran-ethernal/DomainIndexor/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the checkpoint and queue depth",
	Long:  `Print the next block to scan, the number of captured but unapplied events and the registry size.`,
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

		st := store.NewSQLiteStore(database, &db.NoOpMaintenance{}, log)
		defer st.Close()

		if err := migrations.RunMigrationsDB(log, database); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}

		status, err := st.Status(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if status.HasCheckpoint {
			fmt.Fprintf(out, "checkpoint:  %d\n", status.Checkpoint)
		} else {
			fmt.Fprintf(out, "checkpoint:  none (genesis %d)\n", cfg.Indexer.GenesisBlock)
		}
		fmt.Fprintf(out, "queue depth: %d\n", status.QueueDepth)
		fmt.Fprintf(out, "names:       %d\n", status.Names)

		return nil
	},
}
