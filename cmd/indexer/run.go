package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goran-ethernal/DomainIndexor/internal/common"
	"github.com/goran-ethernal/DomainIndexor/internal/config"
	"github.com/goran-ethernal/DomainIndexor/internal/db"
	"github.com/goran-ethernal/DomainIndexor/internal/fetcher"
	"github.com/goran-ethernal/DomainIndexor/internal/indexer"
	"github.com/goran-ethernal/DomainIndexor/internal/metrics"
	"github.com/goran-ethernal/DomainIndexor/internal/migrations"
	"github.com/goran-ethernal/DomainIndexor/internal/resolver"
	"github.com/goran-ethernal/DomainIndexor/internal/rpc"
	"github.com/goran-ethernal/DomainIndexor/internal/store"
	"github.com/goran-ethernal/DomainIndexor/pkg/api"
)

const shutdownTimeout = 10 * time.Second

func runIndexer(cmd *cobra.Command, args []string) error {
	fmt.Printf(banner, version)

	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := componentLogger(cfg, common.ComponentIndexer)
	defer func() {
		_ = log.Close()
	}()

	if cfg.Metrics != nil && cfg.Metrics.Enabled {
		metricsServer := metrics.NewServer(cfg.Metrics, log)
		if err := metricsServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := metricsServer.Stop(stopCtx); err != nil {
				log.Warnf("failed to stop metrics server: %v", err)
			}
		}()
	}

	database, err := db.NewSQLiteDBFromConfig(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	log.Info("running database migrations...")
	if err := migrations.RunMigrationsDB(log, database); err != nil {
		database.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	dbMaintenance := db.NewMaintenanceCoordinator(
		cfg.DB.Path,
		database,
		cfg.Maintenance,
		componentLogger(cfg, common.ComponentMaintenance),
	)

	st := store.NewSQLiteStore(database, dbMaintenance, componentLogger(cfg, common.ComponentStore))
	defer func() {
		if err := st.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	if err := dbMaintenance.Start(ctx); err != nil {
		return fmt.Errorf("failed to start database maintenance: %w", err)
	}
	defer func() {
		if err := dbMaintenance.Stop(); err != nil {
			log.Warnf("failed to stop database maintenance: %v", err)
		}
	}()

	log.Info("connecting to Ethereum node...")
	ethClient, err := rpc.NewClient(ctx, cfg.Indexer.RPCURL, cfg.Indexer.Retry)
	if err != nil {
		return fmt.Errorf("failed to create RPC client: %w", err)
	}
	defer ethClient.Close()
	log.Infof("connected to Ethereum node: %s", cfg.Indexer.RPCURL)

	source, err := fetcher.NewLogFetcherFromConfig(cfg, componentLogger(cfg, common.ComponentLogFetcher), ethClient)
	if err != nil {
		return fmt.Errorf("failed to create log fetcher: %w", err)
	}

	nameResolver, err := resolver.NewFromConfig(cfg, ethClient, componentLogger(cfg, common.ComponentResolver))
	if err != nil {
		return fmt.Errorf("failed to create name resolver: %w", err)
	}

	idx, err := indexer.New(indexer.ConfigFromIndexerConfig(cfg.Indexer), st, source, nameResolver, log)
	if err != nil {
		return fmt.Errorf("failed to create indexer: %w", err)
	}

	if cfg.API != nil && cfg.API.Enabled {
		apiServer := api.NewServer(cfg.API, st, componentLogger(cfg, common.ComponentAPI))
		apiDone := make(chan struct{})
		go func() {
			defer close(apiDone)
			if err := apiServer.Start(ctx); err != nil {
				log.Errorf("API server error: %v", err)
			}
		}()
		// the API must stop reading before the store closes
		defer func() {
			stop()
			<-apiDone
		}()
	}

	metrics.ComponentHealthSet(common.ComponentIndexer, true)
	log.Info("starting DomainIndexor...")

	err = idx.Run(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		log.Info("DomainIndexor stopped successfully")
		return nil
	case indexer.IsUnrecoverable(err):
		metrics.ComponentHealthSet(common.ComponentIndexer, false)
		metrics.ErrorInc(common.ComponentIndexer, "fatal")
		return err
	default:
		metrics.ComponentHealthSet(common.ComponentIndexer, false)
		return fmt.Errorf("indexer failed: %w", err)
	}
}
