package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ConfigError reports mandatory configuration that is missing or malformed.
// It is fatal at startup.
type ConfigError struct {
	Issues []string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + strings.Join(e.Issues, "; ")
}

// Validate checks the mandatory fields. It returns nil or a *ConfigError listing every issue,
// so all problems can be reported at once.
func (c *Config) Validate() error {
	var issues []string

	if issue := checkURL("api.frontend_url", "INVEST_FRONTEND_URL", c.API.FrontendURL); issue != "" {
		issues = append(issues, issue)
	}
	if issue := checkURL("api.backend_url", "INVEST_BACKEND_URL", c.API.BackendURL); issue != "" {
		issues = append(issues, issue)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}

	if len(issues) == 0 {
		return nil
	}
	return &ConfigError{Issues: issues}
}

// checkURL returns an empty string when value is an absolute http(s) URL with a host.
func checkURL(key, envName, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Sprintf("missing required %s (env %s)", key, envName)
	}

	u, err := url.ParseRequestURI(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Sprintf("invalid URL in %s (env %s): %q", key, envName, value)
	}
	return ""
}
