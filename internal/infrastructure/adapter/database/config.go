package database

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/config"
)

// Supported drivers
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Config represents database configuration
type Config struct {
	Driver            string
	Host              string
	Port              int
	Username          string
	Password          string
	Database          string
	SSLMode           string
	MaxOpenConns      int
	MaxIdleConns      int
	ConnMaxLifetime   time.Duration
	ConnMaxIdleTime   time.Duration
	SlowThreshold     time.Duration
	LogLevel          string
	ConnectAttempts   int
	ConnectRetryDelay time.Duration
	LockTimeout       time.Duration // Row lock wait inside a unit of work
}

// FromAppConfig maps the application configuration to database settings
func FromAppConfig(app *config.Config) *Config {
	db := app.Database
	return &Config{
		Driver:            db.Driver,
		Host:              db.Host,
		Port:              ParsePort(db.Port, db.Driver),
		Username:          db.Username,
		Password:          db.Password,
		Database:          db.Database,
		SSLMode:           db.SSLMode,
		MaxOpenConns:      db.MaxOpenConns,
		MaxIdleConns:      db.MaxIdleConns,
		ConnMaxLifetime:   db.ConnMaxLifetime,
		ConnMaxIdleTime:   db.ConnMaxIdleTime,
		SlowThreshold:     db.SlowThreshold,
		LogLevel:          app.Logger.Level,
		ConnectAttempts:   db.ConnectAttempts,
		ConnectRetryDelay: db.ConnectRetryDelay,
		LockTimeout:       app.Ledger.LockTimeout(),
	}
}

// ParsePort converts a port string, falling back to the driver's default port
func ParsePort(port, driver string) int {
	if p, err := strconv.Atoi(port); err == nil && p > 0 {
		return p
	}
	if driver == DriverMySQL {
		return 3306
	}
	return 5432
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("database host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port number: %d", c.Port)
	}
	if c.Username == "" {
		return errors.New("database username is required")
	}
	if c.Database == "" {
		return errors.New("database name is required")
	}

	switch c.Driver {
	case DriverPostgres:
		validSSLModes := map[string]bool{
			"disable":     true,
			"require":     true,
			"verify-ca":   true,
			"verify-full": true,
			"prefer":      true,
		}
		if !validSSLModes[c.SSLMode] {
			return fmt.Errorf("invalid SSL mode: %s", c.SSLMode)
		}
	case DriverMySQL:
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Driver)
	}

	if c.MaxOpenConns < 0 || c.MaxIdleConns < 0 {
		return fmt.Errorf("connection pool sizes must be non-negative")
	}
	if c.LockTimeout < 0 {
		return errors.New("lock timeout must be non-negative")
	}

	return nil
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Driver == DriverMySQL {
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.Username, c.Password, c.Host, c.Port, c.Database,
		)
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}
