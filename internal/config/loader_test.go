package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/goran-ethernal/DomainIndexor/pkg/config"
)

const (
	testDomainAddress       = "0x1ea4e7A798557001b99D88D6b4ba7F7fc79406A9"
	testRainbowTableAddress = "0x87ba8A1BEC5AF0bA0c7C4d5C6a3F8a93652a0B10"
)

func TestLoadFromYAML(t *testing.T) {
	cfg, err := LoadFromYAML("../../config.example.yaml")
	if err != nil {
		t.Fatalf("failed to load YAML config: %v", err)
	}

	validateConfig(t, cfg, "YAML")
}

func TestLoadFromJSON(t *testing.T) {
	cfg, err := LoadFromJSON("../../config.example.json")
	if err != nil {
		t.Fatalf("failed to load JSON config: %v", err)
	}

	validateConfig(t, cfg, "JSON")
}

func TestLoadFromTOML(t *testing.T) {
	cfg, err := LoadFromTOML("../../config.example.toml")
	if err != nil {
		t.Fatalf("failed to load TOML config: %v", err)
	}

	validateConfig(t, cfg, "TOML")
}

func TestLoadFromFile_AutoDetect(t *testing.T) {
	for _, path := range []string{
		"../../config.example.yaml",
		"../../config.example.json",
		"../../config.example.toml",
	} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			cfg, err := LoadFromFile(path)
			require.NoError(t, err)
			validateConfig(t, cfg, "auto-detected "+filepath.Ext(path))
		})
	}
}

func TestLoadFromFile_UnsupportedFormat(t *testing.T) {
	_, err := LoadFromFile("config.txt")
	require.Contains(t, err.Error(), "unsupported config file format")
}

func TestLoadFromFile_EnvExpansion(t *testing.T) {
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
indexer:
  rpc_url: "${DOMAIN_INDEXOR_TEST_RPC}"
contracts:
  domain: "`+testDomainAddress+`"
  rainbow_table: "`+testRainbowTableAddress+`"
db:
  path: "${DOMAIN_INDEXOR_TEST_DB}"
`), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("DOMAIN_INDEXOR_TEST_RPC=http://localhost:8545\nDOMAIN_INDEXOR_TEST_DB=/tmp/domains.sqlite\n"), 0o600))

	t.Cleanup(func() {
		os.Unsetenv("DOMAIN_INDEXOR_TEST_RPC")
		os.Unsetenv("DOMAIN_INDEXOR_TEST_DB")
	})

	cfg, err := LoadFromFile(cfgPath)
	require.NoError(t, err)
	require.Equal(t, "http://localhost:8545", cfg.Indexer.RPCURL)
	require.Equal(t, "/tmp/domains.sqlite", cfg.DB.Path)
}

func TestLoadFromFile_MissingEnv(t *testing.T) {
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`indexer:
  rpc_url: "${DOMAIN_INDEXOR_SURELY_UNSET}"
`), 0o600))

	_, err := LoadFromFile(cfgPath)
	require.ErrorContains(t, err, "DOMAIN_INDEXOR_SURELY_UNSET")
}

// validateConfig checks that the loaded config has expected values
func validateConfig(t *testing.T, cfg *config.Config, format string) {
	t.Helper()

	require.NotEmpty(t, cfg.Indexer.RPCURL, "[%s] indexer.rpc_url should not be empty", format)
	require.Equal(t, uint64(9000000), cfg.Indexer.GenesisBlock, "[%s] indexer.genesis_block", format)
	require.Equal(t, uint64(config.DefaultMaxRange), cfg.Indexer.MaxRange, "[%s] indexer.max_range", format)
	require.Equal(t, 2*time.Second, cfg.Indexer.PollInterval.Duration, "[%s] indexer.poll_interval", format)
	require.Equal(t, "latest", cfg.Indexer.Finality, "[%s] indexer.finality", format)

	require.Equal(t, testDomainAddress, cfg.Contracts.Domain, "[%s] contracts.domain", format)
	require.Equal(t, testRainbowTableAddress, cfg.Contracts.RainbowTable, "[%s] contracts.rainbow_table", format)

	require.Equal(t, config.ResolverTypeContract, cfg.Resolver.Type, "[%s] resolver.type", format)

	require.NotEmpty(t, cfg.DB.Path, "[%s] db.path should not be empty", format)
	require.NotEmpty(t, cfg.DB.JournalMode, "[%s] db.journal_mode should have default value", format)
	require.NotEmpty(t, cfg.DB.Synchronous, "[%s] db.synchronous should have default value", format)

	require.NotNil(t, cfg.Maintenance, "[%s] maintenance should be set", format)
	require.Equal(t, 30*time.Minute, cfg.Maintenance.CheckInterval.Duration, "[%s] maintenance.check_interval", format)

	require.NotNil(t, cfg.Logging, "[%s] logging should be set", format)
	require.Equal(t, "debug", cfg.Logging.GetComponentLevel("log-fetcher"), "[%s] log-fetcher level", format)
	require.Equal(t, "info", cfg.Logging.GetComponentLevel("indexer"), "[%s] indexer level", format)

	require.NotNil(t, cfg.API, "[%s] api should be set", format)
	require.Equal(t, ":8080", cfg.API.ListenAddress, "[%s] api.listen_address", format)
}

func TestConfigDefaults(t *testing.T) {
	cfg := &config.Config{
		Indexer: config.IndexerConfig{
			RPCURL: "https://test.com",
		},
		Contracts: config.ContractsConfig{
			Domain:       testDomainAddress,
			RainbowTable: testRainbowTableAddress,
		},
		DB: config.DatabaseConfig{
			Path: "./test.db",
		},
		API: &config.APIConfig{Enabled: true},
	}

	cfg.ApplyDefaults()

	require.Equal(t, uint64(2048), cfg.Indexer.MaxRange)
	require.Equal(t, "latest", cfg.Indexer.Finality)
	require.Equal(t, 2*time.Second, cfg.Indexer.PollInterval.Duration)
	require.Equal(t, 8, cfg.Indexer.TimestampConcurrency)
	require.Nil(t, cfg.Indexer.Retry, "retries stay disabled unless configured")

	require.Equal(t, config.ResolverTypeContract, cfg.Resolver.Type)
	require.Equal(t, 1024, cfg.Resolver.CacheSize)

	require.Equal(t, "WAL", cfg.DB.JournalMode)
	require.Equal(t, "FULL", cfg.DB.Synchronous)
	require.Equal(t, 5000, cfg.DB.BusyTimeout)
	require.Equal(t, 25, cfg.DB.MaxOpenConnections)

	require.Equal(t, ":8080", cfg.API.ListenAddress)
	require.Equal(t, 15*time.Second, cfg.API.ReadTimeout.Duration)

	require.NoError(t, cfg.Validate())
}

func TestConfigValidation(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Indexer: config.IndexerConfig{
				RPCURL: "https://test.com",
			},
			Contracts: config.ContractsConfig{
				Domain:       testDomainAddress,
				RainbowTable: testRainbowTableAddress,
			},
			DB: config.DatabaseConfig{
				Path: "./test.db",
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *config.Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(cfg *config.Config) {},
		},
		{
			name:    "missing rpc_url",
			mutate:  func(cfg *config.Config) { cfg.Indexer.RPCURL = "" },
			wantErr: "indexer.rpc_url is required",
		},
		{
			name:    "invalid finality",
			mutate:  func(cfg *config.Config) { cfg.Indexer.Finality = "invalid" },
			wantErr: "indexer.finality",
		},
		{
			name:    "invalid domain address",
			mutate:  func(cfg *config.Config) { cfg.Contracts.Domain = "0x1234" },
			wantErr: "contracts.domain",
		},
		{
			name:    "missing rainbow table address",
			mutate:  func(cfg *config.Config) { cfg.Contracts.RainbowTable = "" },
			wantErr: "contracts.rainbow_table",
		},
		{
			name: "unknown event kind override",
			mutate: func(cfg *config.Config) {
				cfg.Contracts.Events = map[string]string{"DomainBurn": "Burn"}
			},
			wantErr: "unknown event kind",
		},
		{
			name:    "unknown resolver type",
			mutate:  func(cfg *config.Config) { cfg.Resolver.Type = "ens" },
			wantErr: "resolver.type",
		},
		{
			name:    "missing db path",
			mutate:  func(cfg *config.Config) { cfg.DB.Path = "" },
			wantErr: "db.path is required",
		},
		{
			name: "invalid maintenance mode",
			mutate: func(cfg *config.Config) {
				cfg.Maintenance = &config.MaintenanceConfig{WALCheckpointMode: "SOMETIMES"}
			},
			wantErr: "maintenance.wal_checkpoint_mode",
		},
		{
			name: "unknown logging component",
			mutate: func(cfg *config.Config) {
				cfg.Logging = &config.LoggingConfig{ComponentLevels: map[string]string{"reorg-detector": "debug"}}
			},
			wantErr: "unknown component",
		},
		{
			name: "metrics path without slash",
			mutate: func(cfg *config.Config) {
				cfg.Metrics = &config.MetricsConfig{Enabled: true, Path: "metrics"}
			},
			wantErr: "path must start with '/'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			cfg.ApplyDefaults()

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestSchema(t *testing.T) {
	data, err := SchemaJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	props, ok := decoded["properties"].(map[string]any)
	require.True(t, ok, "schema should describe properties")
	require.Contains(t, props, "indexer")
	require.Contains(t, props, "contracts")
	require.Contains(t, props, "resolver")
	require.Contains(t, props, "db")
}
