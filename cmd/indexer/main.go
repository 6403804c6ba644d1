package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/goran-ethernal/DomainIndexor/internal/logger"
	"github.com/goran-ethernal/DomainIndexor/pkg/config"
)

const (
	version = "1.0.0"
	banner  = `
╔═══════════════════════════════════════════╗
║         DomainIndexor v%s              ║
║      Domain Registry Event Indexer        ║
╚═══════════════════════════════════════════╝
`
)

var (
	configPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "indexer",
	Short: "DomainIndexor - Domain registry event indexer",
	Long: `DomainIndexor follows the domain and rainbow table contracts, queues their
events durably and materializes the current owner, expiry and plaintext name
of every domain into a SQLite registry served over a read-only API.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runIndexer,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the indexer",
	RunE:  runIndexer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to configuration file")
	rootCmd.AddCommand(runCmd, statusCmd, migrateCmd, configCmd)
}

// loggingConfig avoids handing the logger a typed nil when the section is absent.
func loggingConfig(cfg *config.Config) logger.LoggingConfig {
	if cfg.Logging == nil {
		return nil
	}
	return cfg.Logging
}

func componentLogger(cfg *config.Config, component string) *logger.Logger {
	return logger.NewComponentLoggerFromConfig(component, loggingConfig(cfg))
}
