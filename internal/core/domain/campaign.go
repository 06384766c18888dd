package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Campaign is one row of campaign/experiment data as supplied by a source.
// Records are read-only for the lifetime of a render; nothing in the
// dashboard mutates them. StartDate after EndDate is tolerated and shown
// as-is.
type Campaign struct {
	ID             uuid.UUID      `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	StartDate      time.Time      `json:"start_date" yaml:"start_date"`
	EndDate        time.Time      `json:"end_date" yaml:"end_date"`
	Status         Status         `json:"status" yaml:"status"`
	Progress       int            `json:"progress" yaml:"progress"` // percent, 0-100
	Conversions    int64          `json:"conversions" yaml:"conversions"`
	Spend          float64        `json:"spend" yaml:"spend"` // currency units
	CTR            float64        `json:"ctr" yaml:"ctr"`     // percent
	PipelineStatus PipelineStatus `json:"pipeline_status" yaml:"pipeline_status"`
}

// UntitledName replaces blank campaign names during sanitising.
const UntitledName = "Untitled"

// Sanitize returns a copy of c with malformed numeric fields defaulted:
// negative counts and amounts become zero, as do NaN or infinite rates.
// Progress is left untouched since the view clamps it on its own.
func (c Campaign) Sanitize() Campaign {
	if c.Name == "" {
		c.Name = UntitledName
	}
	if c.Conversions < 0 {
		c.Conversions = 0
	}
	if c.Spend < 0 || math.IsNaN(c.Spend) || math.IsInf(c.Spend, 0) {
		c.Spend = 0
	}
	if c.CTR < 0 || math.IsNaN(c.CTR) || math.IsInf(c.CTR, 0) {
		c.CTR = 0
	}
	return c
}

// SanitizeAll applies Sanitize to every record, returning a new slice.
func SanitizeAll(campaigns []Campaign) []Campaign {
	out := make([]Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, c.Sanitize())
	}
	return out
}
