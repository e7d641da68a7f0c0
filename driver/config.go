package driver

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"
)

// Pool defaults.
const (
	DefaultMaxOpenConns    = 25
	DefaultMaxIdleConns    = 25
	DefaultConnMaxLifetime = 5 * time.Minute
)

// Config holds the connection settings and the pool limits applied to the
// underlying *sql.DB.
type Config struct {
	MySQL           *mysql.Config
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewConfig returns a Config with driver defaults and the default pool
// limits. parseTime is enabled so DATETIME columns scan into time.Time.
func NewConfig() *Config {
	my := mysql.NewConfig()
	my.ParseTime = true
	return &Config{
		MySQL:           my,
		MaxOpenConns:    DefaultMaxOpenConns,
		MaxIdleConns:    DefaultMaxIdleConns,
		ConnMaxLifetime: DefaultConnMaxLifetime,
	}
}

// ParseDSN parses a go-sql-driver/mysql DSN into a Config with the default
// pool limits.
func ParseDSN(dsn string) (*Config, error) {
	my, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("driver: parse dsn: %w", err)
	}
	cfg := NewConfig()
	cfg.MySQL = my
	return cfg, nil
}

// FormatDSN returns the DSN of the connection settings.
func (c *Config) FormatDSN() string {
	return c.MySQL.FormatDSN()
}

// Validate checks the pool limits.
func (c *Config) Validate() error {
	if c.MySQL == nil {
		return fmt.Errorf("driver: config: missing connection settings")
	}
	if c.MaxOpenConns < 0 || c.MaxIdleConns < 0 {
		return fmt.Errorf("driver: config: connection limits must not be negative")
	}
	if c.ConnMaxLifetime < 0 {
		return fmt.Errorf("driver: config: connection lifetime must not be negative")
	}
	return nil
}

// ConfigFromEnv reads <prefix>_DSN (required), <prefix>_MAX_OPEN_CONNS,
// <prefix>_MAX_IDLE_CONNS and <prefix>_CONN_MAX_LIFETIME.
func ConfigFromEnv(prefix string) (*Config, error) {
	dsn := os.Getenv(prefix + "_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("driver: %s_DSN is not set", prefix)
	}
	cfg, err := ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	if cfg.MaxOpenConns, err = envInt(prefix+"_MAX_OPEN_CONNS", cfg.MaxOpenConns); err != nil {
		return nil, err
	}
	if cfg.MaxIdleConns, err = envInt(prefix+"_MAX_IDLE_CONNS", cfg.MaxIdleConns); err != nil {
		return nil, err
	}
	if v := os.Getenv(prefix + "_CONN_MAX_LIFETIME"); v != "" {
		if cfg.ConnMaxLifetime, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("driver: %s_CONN_MAX_LIFETIME: %w", prefix, err)
		}
	}
	return cfg, cfg.Validate()
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("driver: %s: %w", key, err)
	}
	return n, nil
}

// fileConfig is the YAML shape accepted by ParseConfigYAML.
type fileConfig struct {
	DSN             string `yaml:"dsn"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime"`
	MaxOpenConns    *int   `yaml:"max_open_conns"`
	MaxIdleConns    *int   `yaml:"max_idle_conns"`
}

// ParseConfigYAML parses a YAML document:
//
//	dsn: app:secret@tcp(db:3306)/app
//	max_open_conns: 50
//	max_idle_conns: 10
//	conn_max_lifetime: 10m
func ParseConfigYAML(data []byte) (*Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("driver: parse yaml: %w", err)
	}
	if fc.DSN == "" {
		return nil, fmt.Errorf("driver: yaml: dsn is required")
	}
	cfg, err := ParseDSN(fc.DSN)
	if err != nil {
		return nil, err
	}
	if fc.MaxOpenConns != nil {
		cfg.MaxOpenConns = *fc.MaxOpenConns
	}
	if fc.MaxIdleConns != nil {
		cfg.MaxIdleConns = *fc.MaxIdleConns
	}
	if fc.ConnMaxLifetime != "" {
		if cfg.ConnMaxLifetime, err = time.ParseDuration(fc.ConnMaxLifetime); err != nil {
			return nil, fmt.Errorf("driver: yaml: conn_max_lifetime: %w", err)
		}
	}
	return cfg, cfg.Validate()
}
