package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks value ranges that parsing alone cannot catch
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if c.DBMaxConns < 1 {
		problems = append(problems, fmt.Sprintf("DB_MAX_CONNS must be positive, got %d", c.DBMaxConns))
	}
	if c.RandomAPITimeout <= 0 {
		problems = append(problems, "RANDOM_API_TIMEOUT must be positive")
	}
	if c.RandomAPIURL != "" {
		if u, err := url.Parse(c.RandomAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
			problems = append(problems, fmt.Sprintf("RANDOM_API_URL is not an absolute URL: %q", c.RandomAPIURL))
		}
	}
	if c.SmartHistoryLimit < 1 {
		problems = append(problems, fmt.Sprintf("SMART_HISTORY_LIMIT must be positive, got %d", c.SmartHistoryLimit))
	}
	if c.HistoryRetentionDays < 1 {
		problems = append(problems, fmt.Sprintf("HISTORY_RETENTION_DAYS must be positive, got %d", c.HistoryRetentionDays))
	}
	if c.CleanupInterval <= 0 {
		problems = append(problems, "CLEANUP_INTERVAL must be positive")
	}
	if c.StatsCacheSize < 1 {
		problems = append(problems, fmt.Sprintf("STATS_CACHE_SIZE must be positive, got %d", c.StatsCacheSize))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Warnings returns non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == exampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if c.APIKey == exampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if !c.AuthEnabled() {
		warnings = append(warnings, "API_KEY is not set - API authentication is disabled")
	}

	if c.RandomAPIURL == "" {
		warnings = append(warnings, "RANDOM_API_URL is empty - computer moves use the local generator only")
	}

	if c.SmartWindow < 1 {
		warnings = append(warnings, fmt.Sprintf("SMART_WINDOW=%d is below 1 - the default window is used", c.SmartWindow))
	}

	return warnings
}
