package dashboard

import (
	"math"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campaign-dashboard/internal/core/domain"
)

func fixture() []domain.Campaign {
	day := func(d int) time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d) }
	return []domain.Campaign{
		{Name: "Summer Cashback Blast", StartDate: day(-30), EndDate: day(30), Status: domain.StatusActive, Progress: 55, Conversions: 1200, Spend: 25000, CTR: 2.1, PipelineStatus: domain.PipelineHealthy},
		{Name: "SafePay Awareness", StartDate: day(-60), EndDate: day(-5), Status: domain.StatusCompleted, Progress: 100, Conversions: 3100, Spend: 40000, CTR: 3.7, PipelineStatus: domain.PipelineCompleted},
		{Name: "Digital Card Push", StartDate: day(-7), EndDate: day(14), Status: domain.StatusActive, Progress: 35, Conversions: 480, Spend: 7000, CTR: 1.6, PipelineStatus: domain.PipelineHealthy},
		{Name: "Refer-A-Friend", StartDate: day(-15), EndDate: day(45), Status: domain.StatusActive, Progress: 22, Conversions: 220, Spend: 3000, CTR: 1.1, PipelineStatus: domain.PipelineWarning},
		{Name: "Winter Rewards Wrap-up", StartDate: day(-120), EndDate: day(-20), Status: domain.StatusCompleted, Progress: 100, Conversions: 4100, Spend: 60000, CTR: 4.4, PipelineStatus: domain.PipelineCompleted},
	}
}

func TestComputeSummarySeed(t *testing.T) {
	s := ComputeSummary(fixture())
	assert.Equal(t, 5, s.Campaigns)
	assert.Equal(t, int64(9100), s.TotalConversions)
	assert.Equal(t, float64(135000), s.TotalSpend)
	assert.Equal(t, 2.58, s.AverageCTR)
}

func TestComputeSummaryEmpty(t *testing.T) {
	for _, in := range [][]domain.Campaign{nil, {}} {
		s := ComputeSummary(in)
		assert.Zero(t, s.Campaigns)
		assert.Zero(t, s.TotalConversions)
		assert.Zero(t, s.TotalSpend)
		assert.Zero(t, s.AverageCTR)
		assert.False(t, math.IsNaN(s.AverageCTR))
	}
}

func TestComputeSummaryConversionsMatchSum(t *testing.T) {
	inputs := [][]domain.Campaign{
		{{Conversions: 1}},
		{{Conversions: 7}, {Conversions: 0}, {Conversions: 993}},
		fixture()[:2],
	}
	for _, in := range inputs {
		var want int64
		for _, c := range in {
			want += c.Conversions
		}
		assert.Equal(t, want, ComputeSummary(in).TotalConversions)
	}
}

func TestComputeSummaryRoundsCTR(t *testing.T) {
	s := ComputeSummary([]domain.Campaign{{CTR: 1}, {CTR: 1}, {CTR: 2}})
	assert.Equal(t, 1.33, s.AverageCTR)
}

func TestTallyPipelineStatusSeed(t *testing.T) {
	tally := TallyPipelineStatus(fixture())
	require.Equal(t, domain.PipelineTally{
		{Status: domain.PipelineHealthy, Count: 2},
		{Status: domain.PipelineCompleted, Count: 2},
		{Status: domain.PipelineWarning, Count: 1},
	}, tally)
	assert.Equal(t, 5, tally.Total())
	assert.Equal(t, 1, tally.Get(domain.PipelineWarning))
	assert.Equal(t, 0, tally.Get("Broken"))
}

func TestTallyPipelineStatusCountsSumToLen(t *testing.T) {
	inputs := [][]domain.Campaign{
		nil,
		{{PipelineStatus: "Unknown"}},
		{{PipelineStatus: "a"}, {PipelineStatus: "b"}, {PipelineStatus: "a"}, {PipelineStatus: ""}},
		fixture(),
	}
	for _, in := range inputs {
		assert.Equal(t, len(in), TallyPipelineStatus(in).Total())
	}
}

func TestTallyPipelineStatusFirstOccurrenceOrder(t *testing.T) {
	in := []domain.Campaign{{PipelineStatus: "Warning"}, {PipelineStatus: "Healthy"}, {PipelineStatus: "Warning"}}
	tally := TallyPipelineStatus(in)
	require.Len(t, tally, 2)
	assert.Equal(t, domain.PipelineWarning, tally[0].Status)
	assert.Equal(t, 2, tally[0].Count)
	assert.Equal(t, domain.PipelineHealthy, tally[1].Status)
}

func TestCountActive(t *testing.T) {
	assert.Equal(t, 3, CountActive(fixture()))
	assert.Equal(t, 0, CountActive(nil))

	mixed := []domain.Campaign{{Status: "active"}, {Status: "ACTIVE"}, {Status: domain.StatusActive}, {Status: "Paused"}}
	assert.Equal(t, 1, CountActive(mixed))
}

func TestFormatRow(t *testing.T) {
	p := Palette{Accent: "accentA", PipelineAccent: "accentB", Warning: "warn", Neutral: "neutral"}
	c := fixture()[0]

	want := domain.Row{
		Name:             "Summer Cashback Blast",
		StartDateText:    "2025-05-02",
		EndDateText:      "2025-07-01",
		Status:           domain.StatusActive,
		StatusColor:      "accentA",
		ProgressFraction: 0.55,
		Conversions:      1200,
		Spend:            25000,
		CTR:              2.1,
		PipelineStatus:   domain.PipelineHealthy,
		PipelineColor:    "accentB",
	}
	if diff := cmp.Diff(want, FormatRow(c, p)); diff != "" {
		t.Errorf("FormatRow() mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatRowColors(t *testing.T) {
	p := Palette{Accent: "accentA", PipelineAccent: "accentB", Warning: "warn", Neutral: "neutral"}
	cases := []struct {
		status        domain.Status
		pipeline      domain.PipelineStatus
		statusColor   string
		pipelineColor string
	}{
		{domain.StatusActive, domain.PipelineHealthy, "accentA", "accentB"},
		{domain.StatusCompleted, domain.PipelineCompleted, "neutral", "accentB"},
		{"Paused", domain.PipelineWarning, "neutral", "warn"},
		{"active", "Degraded", "neutral", "warn"},
		{"", "", "neutral", "warn"},
	}
	for _, tc := range cases {
		row := FormatRow(domain.Campaign{Status: tc.status, PipelineStatus: tc.pipeline}, p)
		assert.Equal(t, tc.statusColor, row.StatusColor, "status %q", tc.status)
		assert.Equal(t, tc.pipelineColor, row.PipelineColor, "pipeline %q", tc.pipeline)
	}
}

func TestFormatRowToleratesReversedDates(t *testing.T) {
	c := domain.Campaign{
		StartDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	row := FormatRow(c, DefaultPalette())
	assert.Equal(t, "2025-03-10", row.StartDateText)
	assert.Equal(t, "2025-01-02", row.EndDateText)
}

func TestProgressFractionClamped(t *testing.T) {
	for _, pct := range []int{math.MinInt, -500, -1, 0, 1, 50, 99, 100, 101, 1000, math.MaxInt} {
		f := FormatRow(domain.Campaign{Progress: pct}, DefaultPalette()).ProgressFraction
		assert.GreaterOrEqual(t, f, 0.0, "progress %d", pct)
		assert.LessOrEqual(t, f, 1.0, "progress %d", pct)
	}
	assert.Equal(t, 0.0, ProgressFraction(-10))
	assert.Equal(t, 1.0, ProgressFraction(250))
	assert.Equal(t, 0.35, ProgressFraction(35))
}

func TestFormatRowsKeepsOrder(t *testing.T) {
	rows := FormatRows(fixture(), DefaultPalette())
	require.Len(t, rows, 5)
	assert.Equal(t, "Summer Cashback Blast", rows[0].Name)
	assert.Equal(t, "Winter Rewards Wrap-up", rows[4].Name)
	assert.Empty(t, FormatRows(nil, DefaultPalette()))
}
