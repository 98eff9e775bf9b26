package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	LogMaxSizeMB  int    `toml:"log_max_size_mb"`
	LogMaxBackups int    `toml:"log_max_backups"`
	LogMaxAgeDays int    `toml:"log_max_age_days"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// postgres, used by the workout store
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`

	// workout store client
	WorkoutStoreURL     string   `toml:"workout_store_url"`
	WorkoutStoreHost    string   `toml:"workout_store_host"`
	WorkoutStorePort    int      `toml:"workout_store_port"`
	StoreRequestTimeout Duration `toml:"store_request_timeout"`

	// workout store server
	WorkoutStoreLogsPath    string `toml:"workout_store_logs_path"`
	WorkoutStoreMetricsPort string `toml:"workout_store_metrics_port"`

	// drafts
	CommitConcurrency      int      `toml:"commit_concurrency"`
	CommitOperationTimeout Duration `toml:"commit_operation_timeout"`
	DraftIdleTTL           Duration `toml:"draft_idle_ttl"`
	DraftCleanupInterval   Duration `toml:"draft_cleanup_interval"`
	SaveRateLimitPerMin    int      `toml:"save_rate_limit_per_min"`

	// catalog
	CatalogLocalCacheSizeMB int      `toml:"catalog_local_cache_size_mb"`
	CatalogLocalTTL         Duration `toml:"catalog_local_ttl"`
	CatalogSharedTTL        Duration `toml:"catalog_shared_ttl"`
}

// Duration is a time.Duration read from a TOML string, like "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not found", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the config of the given
// environment, with defaults applied.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults(env)
	return cfg, nil
}

func (c *Config) applyDefaults(env string) {
	if c.Environment == "" {
		c.Environment = strings.ToLower(env)
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.LogMaxSizeMB <= 0 {
		c.LogMaxSizeMB = 50
	}
	if c.LogMaxBackups <= 0 {
		c.LogMaxBackups = 30
	}
	if c.LogMaxAgeDays <= 0 {
		c.LogMaxAgeDays = 90
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.WorkoutStorePort == 0 {
		c.WorkoutStorePort = 9100
	}
	if c.WorkoutStoreMetricsPort == "" {
		c.WorkoutStoreMetricsPort = "2113"
	}
	if c.StoreRequestTimeout.Duration == 0 {
		c.StoreRequestTimeout.Duration = 10 * time.Second
	}
	if c.CommitConcurrency <= 0 {
		c.CommitConcurrency = 8
	}
	if c.DraftIdleTTL.Duration == 0 {
		c.DraftIdleTTL.Duration = 12 * time.Hour
	}
	if c.DraftCleanupInterval.Duration == 0 {
		c.DraftCleanupInterval.Duration = 30 * time.Minute
	}
	if c.SaveRateLimitPerMin <= 0 {
		c.SaveRateLimitPerMin = 30
	}
}
