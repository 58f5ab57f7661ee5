package config

import (
	"fmt"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database   DatabaseConfig   `yaml:"database"`
	Log        LogConfig        `yaml:"log"`
	Scheduler  SchedulerConfig  `yaml:"scheduler"`
	Redis      RedisConfig      `yaml:"redis"`
	Ops        OpsConfig        `yaml:"ops"`
	Pagination PaginationConfig `yaml:"pagination"`
	Directory  DirectoryConfig  `yaml:"directory"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SchedulerConfig controls the daily package status recalculation.
type SchedulerConfig struct {
	RunAt      string        `yaml:"run_at"       env:"SCHEDULER_RUN_AT"       env-default:"00:05"`
	RunOnStart bool          `yaml:"run_on_start" env:"SCHEDULER_RUN_ON_START" env-default:"false"`
	BatchSize  int           `yaml:"batch_size"   env:"SCHEDULER_BATCH_SIZE"   env-default:"500"`
	Timeout    time.Duration `yaml:"timeout"      env:"SCHEDULER_TIMEOUT"      env-default:"30m"`

	// Hour and Minute are parsed from RunAt during validation.
	Hour   int `yaml:"-" env:"-"`
	Minute int `yaml:"-" env:"-"`
}

// RedisConfig holds the optional Redis used for the scheduler run lock.
// An empty Addr disables locking.
type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	LockTTL  time.Duration `yaml:"lock_ttl" env:"REDIS_LOCK_TTL" env-default:"1h"`
}

// Enabled reports whether a Redis address is configured.
func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// OpsConfig holds the operational HTTP listener (health and metrics).
type OpsConfig struct {
	Host            string        `yaml:"host"             env:"OPS_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"OPS_PORT"             env-default:"9090"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"OPS_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// Addr returns the listen address.
func (c OpsConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// PaginationConfig bounds list requests.
type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"PAGINATION_DEFAULT_PAGE_SIZE" env-default:"20"`
}

// DirectoryConfig points at the identity-provider directory that holds user
// accounts. An empty BaseURL leaves account provisioning disabled.
type DirectoryConfig struct {
	BaseURL string        `yaml:"base_url" env:"DIRECTORY_BASE_URL"`
	APIKey  string        `yaml:"api_key"  env:"DIRECTORY_API_KEY"`
	Timeout time.Duration `yaml:"timeout"  env:"DIRECTORY_TIMEOUT"  env-default:"10s"`
}

// Enabled reports whether a directory endpoint is configured.
func (c DirectoryConfig) Enabled() bool {
	return c.BaseURL != ""
}
