package config

import (
	"fmt"
	"time"
)

// Ledger store backends
const (
	StoreMemory   = "memory"
	StoreDatabase = "database"
)

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Ledger      LedgerConfig   `mapstructure:"ledger"`
	Events      EventsConfig   `mapstructure:"events"`
	Seed        SeedConfig     `mapstructure:"seed"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// Address returns the listen address
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver            string        `mapstructure:"driver"` // postgres or mysql
	Host              string        `mapstructure:"host"`
	Port              string        `mapstructure:"port"`
	Username          string        `mapstructure:"username"`
	Password          string        `mapstructure:"password"`
	Database          string        `mapstructure:"database"`
	SSLMode           string        `mapstructure:"sslMode"`
	MaxOpenConns      int           `mapstructure:"maxOpenConns"`
	MaxIdleConns      int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime   time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime   time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	SlowThreshold     time.Duration `mapstructure:"slowThreshold"`   // milliseconds
	ConnectAttempts   int           `mapstructure:"connectAttempts"`
	ConnectRetryDelay time.Duration `mapstructure:"connectRetryDelay"` // seconds
	AutoMigrate       bool          `mapstructure:"autoMigrate"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// LedgerConfig contains the ledger core settings
type LedgerConfig struct {
	Store         string `mapstructure:"store"` // memory or database
	LockTimeoutMs int64  `mapstructure:"lockTimeoutMs"`
	BcryptCost    int    `mapstructure:"bcryptCost"`
}

// LockTimeout returns the per-user lock wait as a duration
func (l LedgerConfig) LockTimeout() time.Duration {
	return time.Duration(l.LockTimeoutMs) * time.Millisecond
}

// EventsConfig contains the statement event stream settings
type EventsConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Brokers      []string      `mapstructure:"brokers"`
	Topic        string        `mapstructure:"topic"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout"` // milliseconds
}

// SeedConfig points to the bootstrap users file
type SeedConfig struct {
	Path string `mapstructure:"path"`
}

// Validate checks that the settings required by the selected backends are present
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	switch c.Ledger.Store {
	case StoreMemory:
	case StoreDatabase:
		if c.Database.Host == "" || c.Database.Username == "" || c.Database.Database == "" {
			return fmt.Errorf("database.host, database.username and database.database are required for the database store")
		}
		if c.Database.Driver != "postgres" && c.Database.Driver != "mysql" {
			return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
		}
	default:
		return fmt.Errorf("ledger.store must be %q or %q, got %q", StoreMemory, StoreDatabase, c.Ledger.Store)
	}

	if c.Ledger.LockTimeoutMs < 0 {
		return fmt.Errorf("ledger.lockTimeoutMs cannot be negative")
	}

	if c.Events.Enabled && (len(c.Events.Brokers) == 0 || c.Events.Topic == "") {
		return fmt.Errorf("events.brokers and events.topic are required when events are enabled")
	}

	return nil
}

// IsProduction reports whether the production environment is active
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
