// Package app wires configuration, the backend client and the HTTP handlers together.
package app

import (
	"strings"

	"github.com/bobmcallan/invest-portal/internal/client"
	"github.com/bobmcallan/invest-portal/internal/common"
	"github.com/bobmcallan/invest-portal/internal/config"
	"github.com/bobmcallan/invest-portal/internal/dashboard"
	"github.com/bobmcallan/invest-portal/internal/handlers"
	"github.com/bobmcallan/invest-portal/internal/mcp"
)

// App holds all application components and dependencies.
type App struct {
	Config *config.Config
	Logger *common.Logger

	Client     *client.Client
	Aggregator *dashboard.Aggregator

	// HTTP handlers
	PageHandler         *handlers.PageHandler
	HealthHandler       *handlers.HealthHandler
	VersionHandler      *handlers.VersionHandler
	ServerHealthHandler *handlers.ServerHealthHandler
	MCPHandler          *mcp.Handler
}

// New initializes the application. cfg must already be validated.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	logger = logger.OrSilent()
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	env := strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.IsDevMode() {
		logger.Warn().Msg("Running in dev mode")
	} else if env != "prod" && env != "" {
		logger.Warn().
			Str("environment", cfg.Environment).
			Msg("Unrecognized environment value, defaulting to prod behavior")
	}

	a.Client = client.NewClient(cfg.API.BackendURL, cfg.API.GetTimeout(), logger)
	a.Aggregator = dashboard.NewAggregator(a.Client, dashboard.Windows{
		HistoryDays:          cfg.Dashboard.HistoryDays,
		PortfolioHistoryDays: cfg.Dashboard.PortfolioHistoryDays,
		RecentDecisions:      cfg.Dashboard.RecentDecisions,
		RecentTrades:         cfg.Dashboard.RecentTrades,
		DecisionsPageLimit:   cfg.Dashboard.DecisionsPageLimit,
	}, logger)

	a.initHandlers()

	logger.Info().
		Str("backend_url", a.Client.BaseURL()).
		Str("timeout", cfg.API.GetTimeout().String()).
		Msg("Application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	money := common.NewMoney(a.Config.Display.CurrencySymbol, a.Config.Display.Locale)

	a.PageHandler = handlers.NewPageHandler(a.Logger, a.Aggregator, money, a.Config.IsDevMode())
	a.PageHandler.SetBackendURL(a.Client.BaseURL())
	a.HealthHandler = handlers.NewHealthHandler(a.Logger)
	a.VersionHandler = handlers.NewVersionHandler(a.Logger)
	a.ServerHealthHandler = handlers.NewServerHealthHandler(a.Logger, a.Client)
	a.MCPHandler = mcp.NewHandler(a.Client, a.Aggregator, a.Logger)
}
