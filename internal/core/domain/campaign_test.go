package domain

import (
	"math"
	"testing"
)

func TestSanitizeDefaultsMalformedValues(t *testing.T) {
	c := Campaign{Name: "", Conversions: -4, Spend: math.NaN(), CTR: math.Inf(1), Progress: -20}
	got := c.Sanitize()
	if got.Name != UntitledName {
		t.Fatalf("expected %q, got %q", UntitledName, got.Name)
	}
	if got.Conversions != 0 || got.Spend != 0 || got.CTR != 0 {
		t.Fatalf("expected zeroed numbers, got %+v", got)
	}
	if got.Progress != -20 {
		t.Fatalf("progress must be left for the view to clamp, got %d", got.Progress)
	}
	if c.Conversions != -4 {
		t.Fatalf("sanitize must not modify the receiver")
	}
}

func TestSanitizeKeepsValidValues(t *testing.T) {
	c := Campaign{Name: "Digital Card Push", Conversions: 480, Spend: 7000, CTR: 1.6, Status: "Paused"}
	if got := c.Sanitize(); got != c {
		t.Fatalf("expected record unchanged, got %+v", got)
	}
}

func TestStatusMatchesExactly(t *testing.T) {
	if !StatusActive.IsActive() || Status("active").IsActive() || StatusCompleted.IsActive() {
		t.Fatal("IsActive must be an exact, case-sensitive match")
	}
	if !PipelineHealthy.IsHealthy() || !PipelineCompleted.IsHealthy() || PipelineWarning.IsHealthy() || PipelineStatus("").IsHealthy() {
		t.Fatal("unexpected pipeline health classification")
	}
}
