package config

import (
	"fmt"
	"slices"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/goran-ethernal/DomainIndexor/internal/common"
	"github.com/goran-ethernal/DomainIndexor/internal/logger"
)

const (
	// DefaultMaxRange is the widest block window scanned in one iteration.
	DefaultMaxRange = 2048

	// MaxSearchResults caps the page size of domain searches.
	MaxSearchResults = 200

	ResolverTypeContract = "contract"
	ResolverTypeStatic   = "static"
)

// Config represents the complete configuration for the DomainIndexor.
type Config struct {
	// Indexer contains the run loop and RPC configuration
	Indexer IndexerConfig `yaml:"indexer" json:"indexer" toml:"indexer"`

	// Contracts contains the addresses of the monitored contracts
	Contracts ContractsConfig `yaml:"contracts" json:"contracts" toml:"contracts"`

	// Resolver configures how revealed hashes are turned into plaintext names
	Resolver ResolverConfig `yaml:"resolver" json:"resolver" toml:"resolver"`

	// DB contains database configuration
	DB DatabaseConfig `yaml:"db" json:"db" toml:"db"`

	// Maintenance contains optional database maintenance settings
	Maintenance *MaintenanceConfig `yaml:"maintenance,omitempty" json:"maintenance,omitempty" toml:"maintenance,omitempty"`

	// Logging contains logging configuration
	Logging *LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty" toml:"logging,omitempty"`

	// Metrics contains Prometheus metrics configuration
	Metrics *MetricsConfig `yaml:"metrics,omitempty" json:"metrics,omitempty" toml:"metrics,omitempty"`

	// API contains the read API configuration
	API *APIConfig `yaml:"api,omitempty" json:"api,omitempty" toml:"api,omitempty"`
}

// IndexerConfig represents the configuration for the indexing run loop.
type IndexerConfig struct {
	// RPCURL is the Ethereum RPC endpoint URL
	RPCURL string `yaml:"rpc_url" json:"rpc_url" toml:"rpc_url"`

	// GenesisBlock is the first block scanned when no checkpoint exists
	GenesisBlock uint64 `yaml:"genesis_block" json:"genesis_block" toml:"genesis_block"`

	// MaxRange is the widest block window fetched per scan
	MaxRange uint64 `yaml:"max_range" json:"max_range" toml:"max_range"`

	// PollInterval is how long to wait when the indexer has caught up with the head
	PollInterval common.Duration `yaml:"poll_interval" json:"poll_interval" toml:"poll_interval"`

	// Finality specifies which head is scanned up to: "latest", "safe" or "finalized"
	Finality string `yaml:"finality" json:"finality" toml:"finality"`

	// Confirmations is the number of blocks kept between the head and the scanned range
	Confirmations uint64 `yaml:"confirmations" json:"confirmations" toml:"confirmations"`

	// TimestampConcurrency bounds the parallel block header requests within one fetch
	TimestampConcurrency int `yaml:"timestamp_concurrency" json:"timestamp_concurrency" toml:"timestamp_concurrency"`

	// Retry contains optional RPC retry configuration with exponential backoff
	Retry *RetryConfig `yaml:"retry,omitempty" json:"retry,omitempty" toml:"retry,omitempty"`
}

// ApplyDefaults sets default values for optional indexer configuration fields.
func (i *IndexerConfig) ApplyDefaults() {
	if i.MaxRange == 0 {
		i.MaxRange = DefaultMaxRange
	}
	if i.PollInterval.Duration == 0 {
		i.PollInterval = common.NewDuration(2 * time.Second) //nolint:mnd
	}
	if i.Finality == "" {
		i.Finality = "latest"
	}
	if i.TimestampConcurrency == 0 {
		i.TimestampConcurrency = 8
	}
	if i.Retry != nil {
		i.Retry.ApplyDefaults()
	}
}

// Validate checks if the indexer configuration is valid.
func (i *IndexerConfig) Validate() error {
	if i.RPCURL == "" {
		return fmt.Errorf("rpc_url is required")
	}

	if !slices.Contains([]string{"finalized", "safe", "latest"}, i.Finality) {
		return fmt.Errorf("finality must be one of: 'finalized', 'safe', or 'latest'")
	}

	if i.TimestampConcurrency < 0 {
		return fmt.Errorf("timestamp_concurrency must not be negative")
	}

	return nil
}

// ContractsConfig holds the monitored contract addresses.
type ContractsConfig struct {
	// Domain is the address of the domain registry contract (Register and Transfer events)
	Domain string `yaml:"domain" json:"domain" toml:"domain"`

	// RainbowTable is the address of the rainbow table contract (Revealed events and lookups)
	RainbowTable string `yaml:"rainbow_table" json:"rainbow_table" toml:"rainbow_table"`

	// ABIDir optionally points to a directory of ABI JSON files replacing the built-in interfaces
	ABIDir string `yaml:"abi_dir,omitempty" json:"abi_dir,omitempty" toml:"abi_dir,omitempty"`

	// Events optionally renames the ABI event decoded for an event kind
	// Keys: DomainRegister, DomainTransfer, RainbowTableReveal
	Events map[string]string `yaml:"events,omitempty" json:"events,omitempty" toml:"events,omitempty"`
}

// Validate checks that both contract addresses are well formed.
func (c *ContractsConfig) Validate() error {
	if !ethcommon.IsHexAddress(c.Domain) {
		return fmt.Errorf("domain: invalid address %q", c.Domain)
	}
	if !ethcommon.IsHexAddress(c.RainbowTable) {
		return fmt.Errorf("rainbow_table: invalid address %q", c.RainbowTable)
	}

	for kind := range c.Events {
		if !slices.Contains([]string{"DomainRegister", "DomainTransfer", "RainbowTableReveal"}, kind) {
			return fmt.Errorf("events: unknown event kind '%s'", kind)
		}
	}

	return nil
}

// DomainAddress returns the parsed domain contract address.
func (c *ContractsConfig) DomainAddress() ethcommon.Address {
	return ethcommon.HexToAddress(c.Domain)
}

// RainbowTableAddress returns the parsed rainbow table contract address.
func (c *ContractsConfig) RainbowTableAddress() ethcommon.Address {
	return ethcommon.HexToAddress(c.RainbowTable)
}

// ResolverConfig configures the name resolution capability.
type ResolverConfig struct {
	// Type is "contract" (query the rainbow table) or "static" (use Names)
	Type string `yaml:"type" json:"type" toml:"type"`

	// CacheSize is the number of resolved names kept in memory (negative disables the cache)
	CacheSize int `yaml:"cache_size" json:"cache_size" toml:"cache_size"`

	// Names maps decimal hashes to plaintext names for the static resolver
	Names map[string]string `yaml:"names,omitempty" json:"names,omitempty" toml:"names,omitempty"`
}

// ApplyDefaults sets default values for optional resolver configuration fields.
func (r *ResolverConfig) ApplyDefaults() {
	if r.Type == "" {
		r.Type = ResolverTypeContract
	}
	if r.CacheSize == 0 {
		r.CacheSize = 1024
	}
}

// Validate checks if the resolver configuration is valid.
func (r *ResolverConfig) Validate() error {
	switch r.Type {
	case ResolverTypeContract, ResolverTypeStatic:
	default:
		return fmt.Errorf("type must be one of: 'contract', 'static'")
	}

	return nil
}

// RetryConfig represents RPC retry configuration with exponential backoff.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including initial request)
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts" toml:"max_attempts"`

	// InitialBackoff is the initial backoff duration before first retry
	InitialBackoff common.Duration `yaml:"initial_backoff" json:"initial_backoff" toml:"initial_backoff"`

	// MaxBackoff is the maximum backoff duration
	MaxBackoff common.Duration `yaml:"max_backoff" json:"max_backoff" toml:"max_backoff"`

	// BackoffMultiplier is the multiplier for exponential backoff
	BackoffMultiplier float64 `yaml:"backoff_multiplier" json:"backoff_multiplier" toml:"backoff_multiplier"`
}

// ApplyDefaults sets default values for retry configuration.
func (r *RetryConfig) ApplyDefaults() {
	if r.MaxAttempts == 0 {
		r.MaxAttempts = 5
	}
	if r.InitialBackoff.Duration == 0 {
		r.InitialBackoff = common.NewDuration(1 * time.Second)
	}
	if r.MaxBackoff.Duration == 0 {
		r.MaxBackoff = common.NewDuration(30 * time.Second) //nolint:mnd
	}
	if r.BackoffMultiplier == 0 {
		r.BackoffMultiplier = 2.0
	}
}

// DatabaseConfig represents database configuration.
type DatabaseConfig struct {
	// Path is the file path to the SQLite database
	Path string `yaml:"path" json:"path" toml:"path"`

	// JournalMode sets the SQLite journal mode (e.g., "WAL", "DELETE")
	// WAL mode lets the read API query while the indexer writes
	JournalMode string `yaml:"journal_mode" json:"journal_mode" toml:"journal_mode"`

	// Synchronous sets the synchronization level ("FULL", "NORMAL", "OFF")
	Synchronous string `yaml:"synchronous" json:"synchronous" toml:"synchronous"`

	// BusyTimeout is the time in milliseconds to wait when the database is locked
	BusyTimeout int `yaml:"busy_timeout" json:"busy_timeout" toml:"busy_timeout"`

	// CacheSize is the size of the page cache (negative = KB, positive = pages)
	CacheSize int `yaml:"cache_size" json:"cache_size" toml:"cache_size"`

	// MaxOpenConnections is the maximum number of open database connections
	MaxOpenConnections int `yaml:"max_open_connections" json:"max_open_connections" toml:"max_open_connections"`

	// MaxIdleConnections is the maximum number of idle connections in the pool
	MaxIdleConnections int `yaml:"max_idle_connections" json:"max_idle_connections" toml:"max_idle_connections"`
}

// ApplyDefaults sets default values for optional database configuration fields.
func (d *DatabaseConfig) ApplyDefaults() {
	if d.JournalMode == "" {
		d.JournalMode = "WAL"
	}
	if d.Synchronous == "" {
		d.Synchronous = "FULL"
	}
	if d.BusyTimeout == 0 {
		d.BusyTimeout = 5000
	}
	if d.CacheSize == 0 {
		d.CacheSize = 10000
	}
	if d.MaxOpenConnections == 0 {
		d.MaxOpenConnections = 25
	}
	if d.MaxIdleConnections == 0 {
		d.MaxIdleConnections = 5
	}
}

// Validate checks if the database configuration is valid.
func (d *DatabaseConfig) Validate() error {
	if d.Path == "" {
		return fmt.Errorf("path is required")
	}

	if d.JournalMode != "" &&
		!slices.Contains([]string{"WAL", "DELETE", "TRUNCATE", "PERSIST", "MEMORY"}, d.JournalMode) {
		return fmt.Errorf("journal_mode must be one of: WAL, DELETE, TRUNCATE, PERSIST, MEMORY")
	}

	if d.Synchronous != "" && !slices.Contains([]string{"FULL", "NORMAL", "OFF"}, d.Synchronous) {
		return fmt.Errorf("synchronous must be one of: FULL, NORMAL, OFF")
	}

	return nil
}

// MaintenanceConfig configures database maintenance behavior.
type MaintenanceConfig struct {
	// Enabled controls whether background maintenance runs
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// CheckInterval is how often to run maintenance (e.g., "30m", "1h")
	CheckInterval common.Duration `yaml:"check_interval" json:"check_interval" toml:"check_interval"`

	// VacuumOnStartup runs maintenance immediately on startup
	VacuumOnStartup bool `yaml:"vacuum_on_startup" json:"vacuum_on_startup" toml:"vacuum_on_startup"`

	// WALCheckpointMode controls the WAL checkpoint aggressiveness
	// Options: PASSIVE, FULL, RESTART, TRUNCATE
	WALCheckpointMode string `yaml:"wal_checkpoint_mode" json:"wal_checkpoint_mode" toml:"wal_checkpoint_mode"`
}

// ApplyDefaults sets default values for optional maintenance configuration fields.
func (m *MaintenanceConfig) ApplyDefaults() {
	if m.CheckInterval.Duration == 0 {
		m.CheckInterval = common.NewDuration(30 * time.Minute) //nolint:mnd
	}
	if m.WALCheckpointMode == "" {
		m.WALCheckpointMode = "TRUNCATE"
	}
}

// Validate checks if the maintenance configuration is valid.
func (m *MaintenanceConfig) Validate() error {
	if m.WALCheckpointMode != "" {
		validModes := []string{"PASSIVE", "FULL", "RESTART", "TRUNCATE"}
		if !slices.Contains(validModes, m.WALCheckpointMode) {
			return fmt.Errorf("wal_checkpoint_mode: must be one of: PASSIVE, FULL, RESTART, TRUNCATE")
		}
	}

	return nil
}

// LoggingConfig configures logging behavior with per-component log levels.
type LoggingConfig struct {
	// DefaultLevel is the default log level for all components
	// Options: "debug", "info", "warn", "error"
	DefaultLevel string `yaml:"default_level" json:"default_level" toml:"default_level"`

	// Development enables development mode (stack traces, console encoder)
	Development bool `yaml:"development" json:"development" toml:"development"`

	// ComponentLevels sets log levels for specific components
	// Available components:
	//   - indexer: Run loop (drain, scan, persist)
	//   - log-fetcher: Blockchain log fetching and decoding
	//   - store: Queue, checkpoint and registry storage
	//   - resolver: Hash to name resolution
	//   - maintenance: Database maintenance
	//   - api: Read API
	//   - rpc: RPC client
	ComponentLevels map[string]string `yaml:"component_levels,omitempty" json:"component_levels,omitempty" toml:"component_levels,omitempty"` //nolint:lll
}

// ApplyDefaults sets default values for optional logging configuration fields.
func (l *LoggingConfig) ApplyDefaults() {
	if l.DefaultLevel == "" {
		l.DefaultLevel = "info"
	}
	if l.ComponentLevels == nil {
		l.ComponentLevels = make(map[string]string)
	}
}

// Validate checks if the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	if l.DefaultLevel != "" {
		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(l.DefaultLevel)]; !valid {
			return fmt.Errorf("logging.default_level: must be one of: debug, info, warn, error")
		}
	}

	for component, level := range l.ComponentLevels {
		if _, validComponent := common.AllComponents[common.ToLowerWithTrim(component)]; !validComponent {
			return fmt.Errorf("logging.component_levels: unknown component '%s'", component)
		}

		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(level)]; !valid {
			return fmt.Errorf("logging.component_levels[%s]: must be one of: debug, info, warn, error", component)
		}
	}

	return nil
}

// GetComponentLevel returns the log level for a specific component.
// Falls back to DefaultLevel if no component-specific level is set.
func (l *LoggingConfig) GetComponentLevel(component string) string {
	if level, ok := l.ComponentLevels[component]; ok {
		return common.ToLowerWithTrim(level)
	}
	return common.ToLowerWithTrim(l.DefaultLevel)
}

// GetDefaultLevel returns the default log level.
func (l *LoggingConfig) GetDefaultLevel() string {
	return common.ToLowerWithTrim(l.DefaultLevel)
}

// IsDevelopment returns whether development mode is enabled.
func (l *LoggingConfig) IsDevelopment() bool {
	return l.Development
}

// MetricsConfig configures Prometheus metrics exposition.
type MetricsConfig struct {
	// Enabled controls whether metrics collection and HTTP endpoint are active
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// ListenAddress is the address to bind the metrics HTTP server to
	// Format: "host:port" or ":port"
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// Path is the HTTP path where metrics are exposed
	Path string `yaml:"path" json:"path" toml:"path"`
}

// ApplyDefaults sets default values for optional metrics configuration fields.
func (m *MetricsConfig) ApplyDefaults() {
	if m.ListenAddress == "" {
		m.ListenAddress = ":9090"
	}
	if m.Path == "" {
		m.Path = "/metrics"
	}
}

// Validate checks if the metrics configuration is valid.
func (m *MetricsConfig) Validate() error {
	if m.Enabled {
		if m.ListenAddress == "" {
			return fmt.Errorf("listen_address is required when metrics are enabled")
		}
		if m.Path == "" {
			return fmt.Errorf("path is required when metrics are enabled")
		}
		if m.Path[0] != '/' {
			return fmt.Errorf("path must start with '/'")
		}
	}
	return nil
}

// APIConfig configures the read API HTTP server.
type APIConfig struct {
	// Enabled controls whether the API server is started
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// ListenAddress is the address to bind the API server to
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	ReadTimeout  common.Duration `yaml:"read_timeout" json:"read_timeout" toml:"read_timeout"`
	WriteTimeout common.Duration `yaml:"write_timeout" json:"write_timeout" toml:"write_timeout"`
	IdleTimeout  common.Duration `yaml:"idle_timeout" json:"idle_timeout" toml:"idle_timeout"`

	// CORS configures cross-origin requests
	CORS CORSConfig `yaml:"cors" json:"cors" toml:"cors"`
}

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	Enabled        bool     `yaml:"enabled" json:"enabled" toml:"enabled"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins" toml:"allowed_origins"`
}

// ApplyDefaults sets default values for optional API configuration fields.
func (a *APIConfig) ApplyDefaults() {
	if a.ListenAddress == "" {
		a.ListenAddress = ":8080"
	}
	if a.ReadTimeout.Duration == 0 {
		a.ReadTimeout = common.NewDuration(15 * time.Second) //nolint:mnd
	}
	if a.WriteTimeout.Duration == 0 {
		a.WriteTimeout = common.NewDuration(15 * time.Second) //nolint:mnd
	}
	if a.IdleTimeout.Duration == 0 {
		a.IdleTimeout = common.NewDuration(60 * time.Second) //nolint:mnd
	}
	if a.CORS.Enabled && len(a.CORS.AllowedOrigins) == 0 {
		a.CORS.AllowedOrigins = []string{"*"}
	}
}

// Validate checks if the API configuration is valid.
func (a *APIConfig) Validate() error {
	if a.Enabled && a.ListenAddress == "" {
		return fmt.Errorf("listen_address is required when the API is enabled")
	}
	return nil
}

// ApplyDefaults sets default values for optional configuration fields.
func (c *Config) ApplyDefaults() {
	c.Indexer.ApplyDefaults()
	c.Resolver.ApplyDefaults()
	c.DB.ApplyDefaults()

	if c.Maintenance != nil {
		c.Maintenance.ApplyDefaults()
	}

	if c.Logging != nil {
		c.Logging.ApplyDefaults()
	}

	if c.Metrics != nil {
		c.Metrics.ApplyDefaults()
	}

	if c.API != nil {
		c.API.ApplyDefaults()
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Indexer.Validate(); err != nil {
		return fmt.Errorf("indexer.%w", err)
	}

	if err := c.Contracts.Validate(); err != nil {
		return fmt.Errorf("contracts.%w", err)
	}

	if err := c.Resolver.Validate(); err != nil {
		return fmt.Errorf("resolver.%w", err)
	}

	if err := c.DB.Validate(); err != nil {
		return fmt.Errorf("db.%w", err)
	}

	if c.Maintenance != nil {
		if err := c.Maintenance.Validate(); err != nil {
			return fmt.Errorf("maintenance.%w", err)
		}
	}

	if c.Logging != nil {
		if err := c.Logging.Validate(); err != nil {
			return err
		}
	}

	if c.Metrics != nil {
		if err := c.Metrics.Validate(); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	if c.API != nil {
		if err := c.API.Validate(); err != nil {
			return fmt.Errorf("api: %w", err)
		}
	}

	return nil
}
