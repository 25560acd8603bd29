package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr                string
	LogLevel            string
	PortalBaseURL       string
	PortalTermPath      string
	PortalUserAgent     string
	PortalRateLimit     float64
	PortalTimeout       time.Duration
	PortalConfigFile    string
	LedgerDBPath        string
	LedgerWorkerCount   int
	LedgerQueueSize     int
	LeaderboardCacheTTL time.Duration
}

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8080"),
		LogLevel:            envOr("LOG_LEVEL", "INFO"),
		PortalBaseURL:       envOr("PORTAL_BASE_URL", "https://ucampus.uahurtado.cl"),
		PortalTermPath:      envOr("PORTAL_TERM_PATH", "uah/2025/1"),
		PortalUserAgent:     envOr("PORTAL_USER_AGENT", DefaultUserAgent),
		PortalRateLimit:     envFloatOr("PORTAL_RATE_LIMIT", 0),
		PortalTimeout:       envDurationOr("PORTAL_TIMEOUT", 0),
		PortalConfigFile:    envOr("PORTAL_CONFIG_FILE", ""),
		LedgerDBPath:        envOr("LEDGER_DB_PATH", ":memory:"),
		LedgerWorkerCount:   envIntOr("LEDGER_WORKER_COUNT", 2),
		LedgerQueueSize:     envIntOr("LEDGER_QUEUE_SIZE", 256),
		LeaderboardCacheTTL: envDurationOr("LEADERBOARD_CACHE_TTL", 30*time.Second),
	}
}

// Validate reports every problem found in the configuration at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}
	if c.PortalBaseURL == "" {
		problems = append(problems, "PORTAL_BASE_URL cannot be empty")
	} else if u, err := url.Parse(c.PortalBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("PORTAL_BASE_URL must be an absolute URL (got %q)", c.PortalBaseURL))
	}
	if strings.Trim(c.PortalTermPath, "/") == "" {
		problems = append(problems, "PORTAL_TERM_PATH cannot be empty")
	}
	if c.PortalRateLimit < 0 {
		problems = append(problems, "PORTAL_RATE_LIMIT cannot be negative")
	}
	if c.PortalTimeout < 0 {
		problems = append(problems, "PORTAL_TIMEOUT cannot be negative")
	}
	if c.PortalConfigFile != "" {
		if _, err := os.Stat(c.PortalConfigFile); err != nil {
			problems = append(problems, fmt.Sprintf("PORTAL_CONFIG_FILE not readable: %v", err))
		}
	}
	if c.LedgerDBPath == "" {
		problems = append(problems, "LEDGER_DB_PATH cannot be empty")
	}
	if c.LedgerWorkerCount < 1 {
		problems = append(problems, "LEDGER_WORKER_COUNT must be at least 1")
	}
	if c.LedgerQueueSize < 1 {
		problems = append(problems, "LEDGER_QUEUE_SIZE must be at least 1")
	}
	if c.LeaderboardCacheTTL < 0 {
		problems = append(problems, "LEADERBOARD_CACHE_TTL cannot be negative")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %g", key, v, def)
	}
	return def
}

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
