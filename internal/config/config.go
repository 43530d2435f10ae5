package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Environment string          `toml:"environment"`
	Server      ServerConfig    `toml:"server"`
	API         APIConfig       `toml:"api"`
	Dashboard   DashboardConfig `toml:"dashboard"`
	Display     DisplayConfig   `toml:"display"`
	Logging     LoggingConfig   `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// APIConfig holds the two required base URLs and the backend request timeout.
// FrontendURL is the public URL of this portal; BackendURL is the investment engine API.
type APIConfig struct {
	FrontendURL string `toml:"frontend_url"`
	BackendURL  string `toml:"backend_url"`
	Timeout     string `toml:"timeout"`
}

// GetTimeout parses the backend request timeout, falling back to 10s.
func (c *APIConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// DashboardConfig controls how much history each page asks the backend for.
type DashboardConfig struct {
	HistoryDays          int `toml:"history_days"`
	PortfolioHistoryDays int `toml:"portfolio_history_days"`
	RecentDecisions      int `toml:"recent_decisions"`
	RecentTrades         int `toml:"recent_trades"`
	DecisionsPageLimit   int `toml:"decisions_page_limit"`
}

// DisplayConfig controls money formatting.
type DisplayConfig struct {
	CurrencySymbol string `toml:"currency_symbol"`
	Locale         string `toml:"locale"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level"`
	Format     string   `toml:"format"`
	Outputs    []string `toml:"outputs"`
	FilePath   string   `toml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups"`
}

// IsDevMode returns true when the environment is "dev" or "development".
func (c *Config) IsDevMode() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "dev" || env == "development"
}

// BaseURL returns the public frontend URL without a trailing slash.
func (c *Config) BaseURL() string {
	return strings.TrimRight(c.API.FrontendURL, "/")
}

// LoadFromFile loads configuration with priority: defaults -> file -> .env -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> .env -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	// A .env file never overrides variables already present in the process environment.
	_ = godotenv.Load()

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies INVEST_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("INVEST_ENV"); env != "" {
		config.Environment = env
	}
	if port := os.Getenv("INVEST_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("INVEST_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if u := os.Getenv("INVEST_FRONTEND_URL"); u != "" {
		config.API.FrontendURL = u
	}
	if u := os.Getenv("INVEST_BACKEND_URL"); u != "" {
		config.API.BackendURL = u
	}
	if timeout := os.Getenv("INVEST_API_TIMEOUT"); timeout != "" {
		config.API.Timeout = timeout
	}
	if sym := os.Getenv("INVEST_CURRENCY_SYMBOL"); sym != "" {
		config.Display.CurrencySymbol = sym
	}
	if locale := os.Getenv("INVEST_LOCALE"); locale != "" {
		config.Display.Locale = locale
	}
	if level := os.Getenv("INVEST_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("INVEST_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}
