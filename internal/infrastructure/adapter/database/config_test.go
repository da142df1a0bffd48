package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/config"
)

func validPostgresConfig() *Config {
	return &Config{
		Driver:   DriverPostgres,
		Host:     "localhost",
		Port:     5432,
		Username: "ledger",
		Password: "secret",
		Database: "ledger",
		SSLMode:  "disable",
	}
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid postgres", func(c *Config) {}, ""},
		{"valid mysql without ssl mode", func(c *Config) { c.Driver = DriverMySQL; c.SSLMode = "" }, ""},
		{"missing host", func(c *Config) { c.Host = "" }, "database host is required"},
		{"bad port", func(c *Config) { c.Port = 70000 }, "invalid port number: 70000"},
		{"missing username", func(c *Config) { c.Username = "" }, "database username is required"},
		{"missing database", func(c *Config) { c.Database = "" }, "database name is required"},
		{"bad ssl mode", func(c *Config) { c.SSLMode = "sometimes" }, "invalid SSL mode: sometimes"},
		{"unknown driver", func(c *Config) { c.Driver = "sqlite" }, "unsupported database driver: sqlite"},
		{"negative pool", func(c *Config) { c.MaxOpenConns = -1 }, "connection pool sizes must be non-negative"},
		{"negative lock timeout", func(c *Config) { c.LockTimeout = -time.Second }, "lock timeout must be non-negative"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validPostgresConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	t.Run("postgres", func(t *testing.T) {
		dsn := validPostgresConfig().DSN()
		assert.Equal(t, "host=localhost port=5432 user=ledger password=secret dbname=ledger sslmode=disable TimeZone=UTC", dsn)
	})

	t.Run("mysql", func(t *testing.T) {
		cfg := validPostgresConfig()
		cfg.Driver = DriverMySQL
		cfg.Port = 3306
		assert.Equal(t, "ledger:secret@tcp(localhost:3306)/ledger?charset=utf8mb4&parseTime=True&loc=UTC", cfg.DSN())
	})
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 6543, ParsePort("6543", DriverPostgres))
	assert.Equal(t, 5432, ParsePort("", DriverPostgres))
	assert.Equal(t, 3306, ParsePort("not-a-port", DriverMySQL))
	assert.Equal(t, 5432, ParsePort("-1", DriverPostgres))
}

func TestFromAppConfig(t *testing.T) {
	app := &config.Config{
		Database: config.DatabaseConfig{
			Driver:            DriverMySQL,
			Host:              "db",
			Port:              "",
			Username:          "root",
			Database:          "ledger",
			MaxOpenConns:      20,
			ConnectAttempts:   3,
			ConnectRetryDelay: 2 * time.Second,
		},
		Logger: config.LoggerConfig{Level: "warn"},
		Ledger: config.LedgerConfig{LockTimeoutMs: 1500},
	}

	cfg := FromAppConfig(app)

	require.NotNil(t, cfg)
	assert.Equal(t, 3306, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 20, cfg.MaxOpenConns)
	assert.Equal(t, 3, cfg.ConnectAttempts)
	assert.Equal(t, 1500*time.Millisecond, cfg.LockTimeout)
	assert.NoError(t, cfg.Validate())
}
