package config

import "time"

// Environment variable names
const (
	EnvPort                 = "PORT"
	EnvLogLevel             = "LOG_LEVEL"
	EnvLogFormat            = "LOG_FORMAT"
	EnvEnvironment          = "ENVIRONMENT"
	EnvServiceName          = "SERVICE_NAME"
	EnvVersion              = "VERSION"
	EnvDatabaseURL          = "DATABASE_URL"
	EnvDBUser               = "DB_USER"
	EnvDBPassword           = "DB_PASSWORD"
	EnvDBHost               = "DB_HOST"
	EnvDBPort               = "DB_PORT"
	EnvDBName               = "DB_NAME"
	EnvDBMaxConns           = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime    = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime    = "DB_MAX_CONN_LIFETIME"
	EnvAPIKey               = "API_KEY"
	EnvAllowedOrigins       = "ALLOWED_ORIGINS"
	EnvTrustedProxies       = "TRUSTED_PROXIES"
	EnvRandomAPIURL         = "RANDOM_API_URL"
	EnvRandomAPITimeout     = "RANDOM_API_TIMEOUT"
	EnvSmartWindow          = "SMART_WINDOW"
	EnvSmartHistoryLimit    = "SMART_HISTORY_LIMIT"
	EnvHistoryRetentionDays = "HISTORY_RETENTION_DAYS"
	EnvCleanupInterval      = "CLEANUP_INTERVAL"
	EnvStatsCacheSize       = "STATS_CACHE_SIZE"
	EnvStatsCacheTTL        = "STATS_CACHE_TTL"
)

// Defaults
const (
	DefaultPort                 = 8080
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultEnvironment          = "dev"
	DefaultServiceName          = "rpsls"
	DefaultVersion              = "dev"
	DefaultDBUser               = "postgres"
	DefaultDBPassword           = "postgres"
	DefaultDBHost               = "localhost"
	DefaultDBPort               = "5432"
	DefaultDBName               = "rpsls"
	DefaultDBMaxConns           = 20
	DefaultDBMaxConnIdleTime    = 5 * time.Minute
	DefaultDBMaxConnLifetime    = 30 * time.Minute
	DefaultAllowedOrigins       = "*"
	DefaultRandomAPIURL         = "https://codechallenge.boohma.com/random"
	DefaultRandomAPITimeout     = 2 * time.Second
	DefaultSmartWindow          = 5
	DefaultSmartHistoryLimit    = 50
	DefaultHistoryRetentionDays = 30
	DefaultCleanupInterval      = 24 * time.Hour
	DefaultStatsCacheSize       = 1000
	DefaultStatsCacheTTL        = time.Minute
)

// Example values shipped in .env.example
const (
	exampleDBPassword = "change_this_secure_password"
	exampleAPIKey     = "generate_with_openssl_rand_hex_32"
)
