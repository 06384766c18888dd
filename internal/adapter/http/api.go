package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// handleDashboardJSON returns the full view model: rows, summary, pipeline
// tally and active counter.
func (h *Handler) handleDashboardJSON(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.respondError(w, "dashboard", err)
		return
	}
	writeJSON(w, h.logger, d)
}

// handleSummary returns the key metrics and the active counter. Average
// CTR is 0 when there are no campaigns; check the campaigns field.
func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		h.respondError(w, "summary", err)
		return
	}
	writeJSON(w, h.logger, s)
}

// handlePipelines returns the pipeline tally as an ordered JSON array.
func (h *Handler) handlePipelines(w http.ResponseWriter, r *http.Request) {
	tally, err := h.svc.Pipelines(r.Context())
	if err != nil {
		h.respondError(w, "pipelines", err)
		return
	}
	writeJSON(w, h.logger, tally)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already written
		logger.Error("encode response error", slog.Any("error", err))
	}
}
