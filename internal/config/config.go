package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// defaultTickers is the fixed fund universe evaluated when TICKERS is unset.
// Order matters for report layout.
var defaultTickers = []string{
	"GGRC11",
	"BTAL11",
	"VISC11",
	"ALZR11",
	"BTLG11",
	"HGLG11",
	"TRXF11",
	"RZTR11",
	"BRCO11",
	"JURO11",
}

// Config holds all configuration for the application
type Config struct {
	Tickers   []string
	Scraper   ScraperConfig
	Database  DatabaseConfig
	Output    OutputConfig
	Server    ServerConfig
	CORS      CORSConfig
	Scheduler SchedulerConfig
	LogLevel  string
}

// ScraperConfig holds Status Invest scraping configuration
type ScraperConfig struct {
	// BaseURL is the page URL template; %s is replaced with the
	// lower-cased ticker.
	BaseURL string

	// Delay is the mandatory wait between consecutive fund fetches.
	Delay time.Duration

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// OutputConfig holds report export configuration
type OutputConfig struct {
	Dir string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SchedulerConfig holds the optional re-analysis schedule for serve mode.
// An empty CronSpec disables scheduled re-runs.
type SchedulerConfig struct {
	CronSpec string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	delay, err := getEnvDuration("SCRAPER_DELAY", 1500*time.Millisecond)
	if err != nil {
		return nil, err
	}
	timeout, err := getEnvDuration("SCRAPER_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Tickers: getEnvList("TICKERS", defaultTickers),
		Scraper: ScraperConfig{
			BaseURL: getEnv("SCRAPER_BASE_URL", "https://statusinvest.com.br/fundos-imobiliarios/%s"),
			Delay:   delay,
			Timeout: timeout,
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/fii_reference.db"),
		},
		Output: OutputConfig{
			Dir: getEnv("OUTPUT_DIR", "./output"),
		},
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"http://localhost",
			}),
		},
		Scheduler: SchedulerConfig{
			CronSpec: getEnv("ANALYSIS_CRON", ""),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvList gets a comma-separated environment variable or returns a default value
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}

// getEnvDuration gets a duration environment variable or returns a default value
func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return d, nil
}
