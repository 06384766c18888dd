package httpadapter

import (
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"

	"campaign-dashboard/internal/config/configs"
	"campaign-dashboard/internal/core/port"
	"campaign-dashboard/internal/observability"
	"campaign-dashboard/web"
)

// Options carries the optional parts of the HTTP adapter.
type Options struct {
	// App holds the page title, subtitle and footer.
	App configs.App
	// RateLimit caps requests per client IP per minute. Zero disables it.
	RateLimit int
	// Secure enables HTTPS redirects for deployments behind a TLS proxy.
	Secure bool
	// Metrics is optional; when set, requests are measured and /metrics is
	// served.
	Metrics *observability.Metrics
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a DashboardUseCase to derive the view model and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc       port.DashboardUseCase
	logger    *slog.Logger
	templates *template.Template
	app       configs.App
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. It fails only
// when the embedded templates cannot be parsed.
func NewHandler(svc port.DashboardUseCase, logger *slog.Logger, opts Options) (*Handler, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	tpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	h := &Handler{svc: svc, logger: logger, templates: tpl, app: opts.App}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(secureHeaders(opts.Secure))
	if opts.RateLimit > 0 {
		r.Use(httprate.LimitByIP(opts.RateLimit, time.Minute))
	}
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/healthz", h.handleHealth)
	r.Get("/", h.handleDashboardPage)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/dashboard", h.handleDashboardJSON)
		r.Get("/summary", h.handleSummary)
		r.Get("/pipelines", h.handlePipelines)
		r.Get("/campaigns/export.csv", h.handleExportCSV)
	})

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, err
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	h.router = r
	return h, nil
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, map[string]string{"status": "ok"})
}

// respondError logs err and maps it to a status code. Source outages are
// reported as 503 so callers can retry; anything else is a 500.
func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	h.logger.Error(op+" error", slog.Any("error", err))
	if errors.Is(err, port.ErrSourceUnavailable) {
		http.Error(w, "campaign source unavailable", http.StatusServiceUnavailable)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func secureHeaders(sslRedirect bool) func(http.Handler) http.Handler {
	return secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; style-src 'self' 'unsafe-inline'",
		SSLRedirect:           sslRedirect,
		SSLProxyHeaders:       map[string]string{"X-Forwarded-Proto": "https"},
	}).Handler
}
