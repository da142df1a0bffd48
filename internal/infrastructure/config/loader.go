package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "SL"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"./configs/.env",
	"../configs/.env",
}

// envOverrides maps environment variables (without prefix) to config keys.
// Keys with camelCase segments cannot be reached by viper's AutomaticEnv.
var envOverrides = map[string]string{
	"SERVER_HOST":             "server.host",
	"SERVER_PORT":             "server.port",
	"DB_DRIVER":               "database.driver",
	"DB_HOST":                 "database.host",
	"DB_PORT":                 "database.port",
	"DB_USERNAME":             "database.username",
	"DB_PASSWORD":             "database.password",
	"DB_NAME":                 "database.database",
	"DB_SSL_MODE":             "database.sslMode",
	"DB_MAX_OPEN_CONNS":       "database.maxOpenConns",
	"DB_MAX_IDLE_CONNS":       "database.maxIdleConns",
	"DB_AUTO_MIGRATE":         "database.autoMigrate",
	"LOGGER_LEVEL":            "logger.level",
	"LOGGER_FORMAT":           "logger.format",
	"LEDGER_STORE":            "ledger.store",
	"LEDGER_LOCK_TIMEOUT_MS":  "ledger.lockTimeoutMs",
	"LEDGER_BCRYPT_COST":      "ledger.bcryptCost",
	"EVENTS_ENABLED":          "events.enabled",
	"EVENTS_BROKERS":          "events.brokers",
	"EVENTS_TOPIC":            "events.topic",
	"EVENTS_WRITE_TIMEOUT_MS": "events.writeTimeout",
	"SEED_PATH":               "seed.path",
}

// LoadConfig loads configuration for the environment named by SL_ENV.
// A missing config file is not an error; defaults and env overrides apply.
func LoadConfig() (*Config, error) {
	// .env values never override variables already set in the process
	_ = loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v, env)
}

// LoadConfigFile loads configuration from an explicit file path
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	return decode(v, getEnvironment())
}

func decode(v *viper.Viper, env string) (*Config, error) {
	applyEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found in DotEnvPaths
func loadDotEnvFile() error {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("could not load %s: %w", path, err)
		}
		return nil
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-sensitive configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.slowThreshold", 200)  // milliseconds
	v.SetDefault("database.connectAttempts", 5)
	v.SetDefault("database.connectRetryDelay", 2) // seconds
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("ledger.store", StoreMemory)
	v.SetDefault("ledger.lockTimeoutMs", 5000)
	v.SetDefault("ledger.bcryptCost", 10)

	v.SetDefault("events.enabled", false)
	v.SetDefault("events.topic", "statement-events")
	v.SetDefault("events.writeTimeout", 5000) // milliseconds

	v.SetDefault("seed.path", "")
}

// getEnvironment determines the environment from SL_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// applyEnvOverrides lets SL_* variables take precedence over file values
func applyEnvOverrides(v *viper.Viper) {
	for name, key := range envOverrides {
		value, ok := os.LookupEnv(EnvPrefix + "_" + name)
		if !ok || value == "" {
			continue
		}
		if key == "events.brokers" {
			v.Set(key, strings.Split(value, ","))
			continue
		}
		v.Set(key, value)
	}
}

// processDurations converts the raw integer values to durations in their configured units
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond
	config.Database.ConnectRetryDelay = time.Duration(config.Database.ConnectRetryDelay) * time.Second

	config.Events.WriteTimeout = time.Duration(config.Events.WriteTimeout) * time.Millisecond
}
