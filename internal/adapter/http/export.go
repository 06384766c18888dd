package httpadapter

import (
	"bytes"
	"encoding/csv"
	"io"
	"net/http"
	"strconv"

	"campaign-dashboard/internal/core/domain"
)

var csvHeader = []string{"Name", "Start Date", "End Date", "Status", "Progress", "Conversions", "Spend", "CTR (%)", "Data Pipeline"}

// handleExportCSV streams the campaign rows as CSV.
func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.Dashboard(r.Context())
	if err != nil {
		h.respondError(w, "export", err)
		return
	}
	var buf bytes.Buffer
	if err = writeRowsCSV(&buf, d.Rows); err != nil {
		h.respondError(w, "write csv", err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="campaigns.csv"`)
	_, _ = buf.WriteTo(w)
}

func writeRowsCSV(w io.Writer, rows []domain.Row) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write([]string{
			row.Name,
			row.StartDateText,
			row.EndDateText,
			string(row.Status),
			strconv.FormatFloat(row.ProgressFraction*100, 'f', 0, 64),
			strconv.FormatInt(row.Conversions, 10),
			strconv.FormatFloat(row.Spend, 'f', -1, 64),
			strconv.FormatFloat(row.CTR, 'f', -1, 64),
			string(row.PipelineStatus),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
