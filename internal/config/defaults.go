package config

// NewDefaultConfig creates a configuration with default values.
// Both API URLs are intentionally empty: they must be supplied by file or environment.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "prod",
		Server: ServerConfig{
			Port: 4300,
			Host: "localhost",
		},
		API: APIConfig{
			Timeout: "10s",
		},
		Dashboard: DashboardConfig{
			HistoryDays:          30,
			PortfolioHistoryDays: 60,
			RecentDecisions:      5,
			RecentTrades:         20,
			DecisionsPageLimit:   50,
		},
		Display: DisplayConfig{
			CurrencySymbol: "₹",
			Locale:         "en-US",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Outputs:    []string{"console"},
			FilePath:   "logs/invest-portal.log",
			MaxSizeMB:  10,
			MaxBackups: 5,
		},
	}
}
