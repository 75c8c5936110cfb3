package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	ProgressCacheRedis = "redis"
	ProgressCacheLocal = "local"
	ProgressCacheNone  = "none"
)

type Config struct {
	Environment string `toml:"-"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	AutoMigrate    bool   `toml:"auto_migrate"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// progress snapshot cache: redis | local | none
	ProgressCache           string `toml:"progress_cache"`
	ProgressCacheTTLSeconds int    `toml:"progress_cache_ttl_seconds"`

	WriteRateLimitAllowedPerMin int      `toml:"write_rate_limit_allowed_per_min"`
	AllowedOrigins              []string `toml:"allowed_origins"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

func (c *Config) ProgressCacheTTL() time.Duration {
	return time.Duration(c.ProgressCacheTTLSeconds) * time.Second
}

func (c *Config) validate() error {
	if c.Port <= 0 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	switch c.ProgressCache {
	case "":
		c.ProgressCache = ProgressCacheNone
	case ProgressCacheRedis, ProgressCacheLocal, ProgressCacheNone:
	default:
		return fmt.Errorf("unknown progress cache kind: %s", c.ProgressCache)
	}
	if c.ProgressCache != ProgressCacheNone && c.ProgressCacheTTLSeconds <= 0 {
		return fmt.Errorf("progress cache ttl must be positive, got %d", c.ProgressCacheTTLSeconds)
	}
	if c.WriteRateLimitAllowedPerMin <= 0 {
		c.WriteRateLimitAllowedPerMin = 60
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	return nil
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
		return nil, fmt.Errorf("config for env %s missing", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for the given env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", env, err)
	}

	return cfg, nil
}
