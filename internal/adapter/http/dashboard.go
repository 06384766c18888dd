package httpadapter

import (
	"bytes"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"campaign-dashboard/internal/core/dashboard"
	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
	"campaign-dashboard/web"
)

// pageData is the value handed to the dashboard template.
type pageData struct {
	Title     string
	Subtitle  string
	Footer    string
	Palette   dashboard.Palette
	Dashboard *port.Dashboard
}

func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"money":   dashboard.FormatMoney,
		"count":   dashboard.FormatCount,
		"percent": dashboard.FormatPercent,
		"percentOf": func(fraction float64) string {
			return strconv.FormatFloat(fraction*100, 'f', 0, 64)
		},
		"averageCTR": func(s domain.Summary) string {
			return dashboard.FormatAverageCTR(s.AverageCTR, s.Campaigns)
		},
	}
	return template.New("root").Funcs(funcs).ParseFS(web.Templates, "templates/*.html")
}

// handleDashboardPage renders the HTML dashboard. The page is rendered into
// a buffer first so a template failure still yields a clean 500.
func (h *Handler) handleDashboardPage(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.respondError(w, "dashboard", err)
		return
	}
	data := pageData{
		Title:     h.app.Title,
		Subtitle:  h.app.Subtitle,
		Footer:    h.app.Footer,
		Palette:   d.Palette,
		Dashboard: d,
	}
	var buf bytes.Buffer
	if err = h.templates.ExecuteTemplate(&buf, "dashboard.html", data); err != nil {
		h.respondError(w, "render template", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err = buf.WriteTo(w); err != nil {
		h.logger.Debug("write page", slog.Any("error", err))
	}
}
