package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	Database DatabaseConfig

	// Output configuration
	Output OutputConfig

	// Logging configuration
	Log LogConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	CentralName    string
	ConnectTimeout time.Duration
	ConnectRetries int
	RetryDelay     time.Duration
	MaxOpenConns   int
	MaxIdleConns   int
	MaxLifetime    time.Duration
}

// OutputConfig holds generated artifact settings
type OutputConfig struct {
	Dir              string
	AssetsDir        string
	TopUpManualImage string
	MissingUsersFile string
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from a .env file (if present) and environment variables
func Load() (*Config, error) {
	// Missing .env is fine; the environment wins either way
	_ = godotenv.Load()

	cfg := &Config{
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "3306"),
			User:           getEnv("DB_USER", "root"),
			Password:       getEnv("DB_PASS", ""),
			CentralName:    getEnv("DB_CENTRAL_NAME", "central-mc"),
			ConnectTimeout: getDurationEnv("DB_CONNECT_TIMEOUT", 10*time.Second),
			ConnectRetries: getIntEnv("DB_CONNECT_RETRIES", 3),
			RetryDelay:     getDurationEnv("DB_CONNECT_RETRY_DELAY", 2*time.Second),
			MaxOpenConns:   getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:   getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:    getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
		},
		Output: OutputConfig{
			Dir:              getEnv("OUTPUT_DIR", "output"),
			AssetsDir:        getEnv("ASSETS_DIR", "assets"),
			TopUpManualImage: getEnv("TOPUP_MANUAL_IMAGE", "TOPUPMANUAL.png"),
			MissingUsersFile: getEnv("MISSING_USERS_FILE", "missing_users_import.csv"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.Database.ConnectRetries < 1 {
		return fmt.Errorf("DB_CONNECT_RETRIES must be at least 1")
	}
	return nil
}

// GetDSN returns the MySQL connection string for the given database name
func (c *DatabaseConfig) GetDSN(dbName string) string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&timeout=%s",
		c.User, c.Password, c.Host, c.Port, dbName, c.ConnectTimeout,
	)
}

// TenantDatabase returns the database name for a tenant
func (c *DatabaseConfig) TenantDatabase(tenantID string) string {
	return "tenant-" + tenantID
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
