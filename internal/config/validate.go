package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/insurance-admin/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required")
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}

	if c.Pagination.DefaultPageSize <= 0 || c.Pagination.DefaultPageSize > domain.MaxPageSize {
		return fmt.Errorf("pagination.default_page_size must be in 1..%d (got %d)", domain.MaxPageSize, c.Pagination.DefaultPageSize)
	}

	if c.Redis.Enabled() && c.Redis.LockTTL <= 0 {
		return fmt.Errorf("redis.lock_ttl must be > 0 (got %s)", c.Redis.LockTTL)
	}

	if c.Directory.Enabled() {
		u, err := url.Parse(c.Directory.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("directory.base_url must be an absolute http(s) URL (got %q)", c.Directory.BaseURL)
		}
		if c.Directory.Timeout <= 0 {
			return fmt.Errorf("directory.timeout must be > 0 (got %s)", c.Directory.Timeout)
		}
	}

	return nil
}

func (s *SchedulerConfig) validate() error {
	if s.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", s.BatchSize)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", s.Timeout)
	}

	h, m, err := ParseClock(s.RunAt)
	if err != nil {
		return fmt.Errorf("run_at: %w", err)
	}
	s.Hour, s.Minute = h, m

	return nil
}

// ParseClock parses a 24-hour "HH:MM" time of day.
func ParseClock(raw string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid time of day %q, want HH:MM", raw)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", raw)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", raw)
	}
	return hour, minute, nil
}
