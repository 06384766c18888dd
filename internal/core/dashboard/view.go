// Package dashboard derives the display values of the campaign metrics view.
// Every function here is a pure function of its input; nothing is cached and
// malformed values are clamped rather than rejected.
package dashboard

import (
	"math"

	"campaign-dashboard/internal/core/domain"
)

// DateLayout is the layout of start and end date captions.
const DateLayout = "2006-01-02"

// FormatRow derives the display model for one campaign.
func FormatRow(c domain.Campaign, palette Palette) domain.Row {
	statusColor := palette.Neutral
	if c.Status.IsActive() {
		statusColor = palette.Accent
	}
	pipelineColor := palette.Warning
	if c.PipelineStatus.IsHealthy() {
		pipelineColor = palette.PipelineAccent
	}
	return domain.Row{
		Name:             c.Name,
		StartDateText:    c.StartDate.Format(DateLayout),
		EndDateText:      c.EndDate.Format(DateLayout),
		Status:           c.Status,
		StatusColor:      statusColor,
		ProgressFraction: ProgressFraction(c.Progress),
		Conversions:      c.Conversions,
		Spend:            c.Spend,
		CTR:              c.CTR,
		PipelineStatus:   c.PipelineStatus,
		PipelineColor:    pipelineColor,
	}
}

// FormatRows applies FormatRow to every campaign, preserving order.
func FormatRows(campaigns []domain.Campaign, palette Palette) []domain.Row {
	rows := make([]domain.Row, 0, len(campaigns))
	for _, c := range campaigns {
		rows = append(rows, FormatRow(c, palette))
	}
	return rows
}

// ProgressFraction clamps percent to [0, 100] and scales it to [0, 1].
func ProgressFraction(percent int) float64 {
	switch {
	case percent < 0:
		percent = 0
	case percent > 100:
		percent = 100
	}
	return float64(percent) / 100
}

// ComputeSummary sums conversions and spend and averages the CTR, rounded
// to two decimals. An empty input yields zero for every field.
func ComputeSummary(campaigns []domain.Campaign) domain.Summary {
	summary := domain.Summary{Campaigns: len(campaigns)}
	if len(campaigns) == 0 {
		return summary
	}
	var ctrTotal float64
	for _, c := range campaigns {
		summary.TotalConversions += c.Conversions
		summary.TotalSpend += c.Spend
		ctrTotal += c.CTR
	}
	avg := round2(ctrTotal / float64(len(campaigns)))
	if math.IsNaN(avg) || math.IsInf(avg, 0) {
		avg = 0
	}
	summary.AverageCTR = avg
	return summary
}

// TallyPipelineStatus counts campaigns per pipeline status. Entries appear in
// the order their status is first seen, so output is stable for a given input.
func TallyPipelineStatus(campaigns []domain.Campaign) domain.PipelineTally {
	tally := domain.PipelineTally{}
	index := make(map[domain.PipelineStatus]int, 4)
	for _, c := range campaigns {
		i, ok := index[c.PipelineStatus]
		if !ok {
			index[c.PipelineStatus] = len(tally)
			tally = append(tally, domain.PipelineCount{Status: c.PipelineStatus, Count: 1})
			continue
		}
		tally[i].Count++
	}
	return tally
}

// CountActive returns the number of campaigns whose status is exactly Active.
func CountActive(campaigns []domain.Campaign) int {
	n := 0
	for _, c := range campaigns {
		if c.Status.IsActive() {
			n++
		}
	}
	return n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
