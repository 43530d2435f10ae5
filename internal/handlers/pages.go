package handlers

import (
	"bytes"
	"context"
	"html/template"
	"net/http"
	"os"
	"path/filepath"

	"github.com/bobmcallan/invest-portal/internal/common"
	"github.com/bobmcallan/invest-portal/internal/config"
	"github.com/bobmcallan/invest-portal/internal/dashboard"
)

// PageLoader assembles the view-models behind each HTML page.
type PageLoader interface {
	LoadDashboard(ctx context.Context) (*dashboard.DashboardView, error)
	LoadPortfolioPage(ctx context.Context) (*dashboard.PortfolioView, error)
	LoadDecisionsPage(ctx context.Context) (*dashboard.DecisionsView, error)
	LoadDecisionDetail(ctx context.Context, id int) (*dashboard.DecisionDetailView, error)
}

// PageHandler serves HTML pages rendered with Go templates.
type PageHandler struct {
	logger     *common.Logger
	templates  *template.Template
	loader     PageLoader
	money      common.Money
	devMode    bool
	backendURL string
}

// NewPageHandler creates a page handler that loads templates from the pages directory.
func NewPageHandler(logger *common.Logger, loader PageLoader, money common.Money, devMode bool) *PageHandler {
	pagesDir := FindPagesDir()

	templates := template.Must(template.New("").Funcs(templateFuncs()).ParseGlob(filepath.Join(pagesDir, "*.html")))
	template.Must(templates.ParseGlob(filepath.Join(pagesDir, "partials", "*.html")))

	return &PageHandler{
		logger:    logger.OrSilent(),
		templates: templates,
		loader:    loader,
		money:     money,
		devMode:   devMode,
	}
}

// SetBackendURL sets the backend URL shown in the page header.
func (h *PageHandler) SetBackendURL(backendURL string) {
	h.backendURL = backendURL
}

// FindPagesDir locates the pages directory.
func FindPagesDir() string {
	dirs := []string{
		"./pages",
		"../pages",
		"../../pages",
	}

	for _, dir := range dirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			abs, _ := filepath.Abs(dir)
			return abs
		}
	}

	return "."
}

// StaticFileHandler serves files under pages/static.
func (h *PageHandler) StaticFileHandler(w http.ResponseWriter, r *http.Request) {
	staticDir := filepath.Join(FindPagesDir(), "static")

	path := r.URL.Path[len("/static/"):]
	fullPath := filepath.Join(staticDir, path)

	absStaticDir, _ := filepath.Abs(staticDir)
	absFullPath, _ := filepath.Abs(fullPath)
	if len(absFullPath) < len(absStaticDir) || absFullPath[:len(absStaticDir)] != absStaticDir {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, fullPath)
}

// basePage carries the fields every layout needs.
type basePage struct {
	Page       string
	Title      string
	DevMode    bool
	BackendURL string
	Version    string
}

func (h *PageHandler) base(page, title string) basePage {
	return basePage{
		Page:       page,
		Title:      title,
		DevMode:    h.devMode,
		BackendURL: h.backendURL,
		Version:    config.GetVersion(),
	}
}

// render executes a template into a buffer so a failed render never leaves a partial page.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.WithContext(r.Context()).Error().
			Str("template", name).
			Err(err).
			Msg("Failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		w.Write(buf.Bytes())
	}
}
