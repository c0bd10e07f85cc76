package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// Database
	DatabaseURL       string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// HTTP
	APIKey         string // Optional; enables API key authentication when set
	AllowedOrigins []string
	TrustedProxies []string // Peers whose X-Forwarded-For is honoured

	// Random provider
	RandomAPIURL     string
	RandomAPITimeout time.Duration

	// Adaptive strategy
	SmartWindow       int
	SmartHistoryLimit int

	// History
	HistoryRetentionDays int
	CleanupInterval      time.Duration
	StatsCacheSize       int
	StatsCacheTTL        time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:      getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:    getEnv(EnvServiceName, DefaultServiceName),
		Version:        getEnv(EnvVersion, DefaultVersion),
		DatabaseURL:    getEnv(EnvDatabaseURL, ""),
		DBUser:         getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:     getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:         getEnv(EnvDBHost, DefaultDBHost),
		DBPort:         getEnv(EnvDBPort, DefaultDBPort),
		DBName:         getEnv(EnvDBName, DefaultDBName),
		APIKey:         getEnv(EnvAPIKey, ""),
		AllowedOrigins: splitList(getEnv(EnvAllowedOrigins, DefaultAllowedOrigins)),
		TrustedProxies: splitList(getEnv(EnvTrustedProxies, "")),
		RandomAPIURL:   strings.TrimSpace(getEnv(EnvRandomAPIURL, DefaultRandomAPIURL)),
	}

	var err error
	if cfg.Port, err = getEnvAsInt(EnvPort, DefaultPort); err != nil {
		return nil, err
	}
	if cfg.DBMaxConns, err = getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnIdleTime, err = getEnvAsDuration(EnvDBMaxConnIdleTime, DefaultDBMaxConnIdleTime); err != nil {
		return nil, err
	}
	if cfg.DBMaxConnLifetime, err = getEnvAsDuration(EnvDBMaxConnLifetime, DefaultDBMaxConnLifetime); err != nil {
		return nil, err
	}
	if cfg.RandomAPITimeout, err = getEnvAsDuration(EnvRandomAPITimeout, DefaultRandomAPITimeout); err != nil {
		return nil, err
	}
	if cfg.SmartWindow, err = getEnvAsInt(EnvSmartWindow, DefaultSmartWindow); err != nil {
		return nil, err
	}
	if cfg.SmartHistoryLimit, err = getEnvAsInt(EnvSmartHistoryLimit, DefaultSmartHistoryLimit); err != nil {
		return nil, err
	}
	if cfg.HistoryRetentionDays, err = getEnvAsInt(EnvHistoryRetentionDays, DefaultHistoryRetentionDays); err != nil {
		return nil, err
	}
	if cfg.CleanupInterval, err = getEnvAsDuration(EnvCleanupInterval, DefaultCleanupInterval); err != nil {
		return nil, err
	}
	if cfg.StatsCacheSize, err = getEnvAsInt(EnvStatsCacheSize, DefaultStatsCacheSize); err != nil {
		return nil, err
	}
	if cfg.StatsCacheTTL, err = getEnvAsDuration(EnvStatsCacheTTL, DefaultStatsCacheTTL); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable. Unset or blank returns the default.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return n, nil
}

// getEnvAsDuration parses a Go duration ("1500ms", "2m") or a plain number of seconds ("2.5").
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return defaultValue, nil
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}
	secs, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: expected a duration", key, value)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string.
// DATABASE_URL wins over the individual DB_* parts.
func (c *Config) GetDBConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// AuthEnabled reports whether API key authentication is active
func (c *Config) AuthEnabled() bool {
	return c.APIKey != ""
}
