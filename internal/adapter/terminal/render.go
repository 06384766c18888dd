// Package terminal renders the dashboard view model as styled text for the
// operator CLI.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"campaign-dashboard/internal/core/dashboard"
	"campaign-dashboard/internal/core/port"
)

const progressWidth = 10

var headers = []string{"Name", "Start", "End", "Status", "Progress", "Conversions", "CTR (%)", "Spend ($)", "Data Pipeline"}

// Renderer writes dashboards using a lipgloss renderer bound to an output.
// Colors are degraded or dropped according to the output's capabilities.
type Renderer struct {
	r *lipgloss.Renderer
}

// NewRenderer creates a renderer for w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{r: lipgloss.NewRenderer(w)}
}

// Render formats the full dashboard: heading, campaign table, key metrics
// and pipeline tally.
func (rd *Renderer) Render(title string, d *port.Dashboard) string {
	p := d.Palette
	heading := rd.r.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Primary))
	section := rd.r.NewStyle().Bold(true).Foreground(lipgloss.Color(p.Secondary))
	muted := rd.r.NewStyle().Faint(true)

	var sb strings.Builder
	sb.WriteString(heading.Render(title))
	sb.WriteString("\n")
	sb.WriteString(section.Render(fmt.Sprintf("Active Experiments: %d", d.ActiveCount)))
	sb.WriteString("\n\n")

	sb.WriteString(section.Render("Overview of Experiments"))
	sb.WriteString("\n")
	if len(d.Rows) == 0 {
		sb.WriteString(muted.Render("No campaigns to show."))
		sb.WriteString("\n")
	} else {
		sb.WriteString(rd.table(d))
	}
	sb.WriteString("\n")

	sb.WriteString(heading.Render("Key Metrics Summary"))
	sb.WriteString("\n")
	s := d.Summary
	sb.WriteString(fmt.Sprintf("Total Conversions: %s\n", dashboard.FormatCount(s.TotalConversions)))
	sb.WriteString(fmt.Sprintf("Total Spend ($):   %s\n", dashboard.FormatMoney(s.TotalSpend)))
	sb.WriteString(fmt.Sprintf("Avg. CTR (%%):      %s\n", dashboard.FormatAverageCTR(s.AverageCTR, s.Campaigns)))
	sb.WriteString("\n")

	sb.WriteString(section.Render("Data Pipelines Overview"))
	sb.WriteString("\n")
	for _, pc := range d.Pipelines {
		sb.WriteString(fmt.Sprintf("%s: %d\n", pc.Status, pc.Count))
	}
	return sb.String()
}

// table lays out the campaign rows with column widths taken from the widest
// cell, the way a static table is drawn.
func (rd *Renderer) table(d *port.Dashboard) string {
	cells := make([][]string, 0, len(d.Rows))
	for _, row := range d.Rows {
		cells = append(cells, []string{
			row.Name,
			row.StartDateText,
			row.EndDateText,
			string(row.Status),
			progressBar(row.ProgressFraction),
			dashboard.FormatCount(row.Conversions),
			dashboard.FormatPercent(row.CTR),
			dashboard.FormatMoney(row.Spend),
			string(row.PipelineStatus),
		})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	headerStyle := rd.r.NewStyle().Bold(true).PaddingRight(2)
	cellStyle := rd.r.NewStyle().PaddingRight(2)

	var sb strings.Builder
	for i, h := range headers {
		sb.WriteString(headerStyle.Width(widths[i] + 2).Render(h))
	}
	sb.WriteString("\n")
	for ri, row := range cells {
		for i, cell := range row {
			style := cellStyle.Width(widths[i] + 2)
			switch i {
			case 3:
				style = style.Foreground(lipgloss.Color(d.Rows[ri].StatusColor))
			case 8:
				style = style.Foreground(lipgloss.Color(d.Rows[ri].PipelineColor))
			}
			sb.WriteString(style.Render(cell))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func progressBar(fraction float64) string {
	filled := int(fraction*progressWidth + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", progressWidth-filled)
}
