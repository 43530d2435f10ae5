package handlers

import (
	"errors"
	"net/http"

	"github.com/bobmcallan/invest-portal/internal/client"
	"github.com/bobmcallan/invest-portal/internal/dashboard"
)

// errorPage is the data behind error.html.
type errorPage struct {
	basePage
	Status  int
	Heading string
	Message string
}

// StatusFor maps a page load failure to the HTTP status of the error view.
// Timeouts are 504, a backend 404 stays 404, every other upstream failure is 502.
func StatusFor(err error) int {
	var te *client.TimeoutError
	if errors.As(err, &te) {
		return http.StatusGatewayTimeout
	}
	var fe *client.FetchError
	if errors.As(err, &fe) && fe.Status == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// headingFor names the page that failed.
func headingFor(err error) string {
	var ae *dashboard.AggregateError
	if errors.As(err, &ae) {
		return "Unable to load " + ae.Page
	}
	return "Unable to load page"
}

// renderError renders the error view with a link back to the dashboard.
func (h *PageHandler) renderError(w http.ResponseWriter, r *http.Request, status int, heading string, err error) {
	h.logger.WithContext(r.Context()).Warn().
		Str("path", r.URL.Path).
		Int("status", status).
		Err(err).
		Msg("Rendering error page")

	data := errorPage{
		basePage: h.base("error", heading),
		Status:   status,
		Heading:  heading,
		Message:  err.Error(),
	}
	h.render(w, r, status, "error.html", data)
}
