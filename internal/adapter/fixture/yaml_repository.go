package fixture

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"campaign-dashboard/internal/core/domain"
	"campaign-dashboard/internal/core/port"
)

const dateLayout = "2006-01-02"

// fileNamespace derives IDs for records that do not carry one.
var fileNamespace = uuid.MustParse("0b8e6d4c-71a2-4f3e-8c59-d2a61f0e9b37")

// file is the on-disk layout of a campaign fixture.
type file struct {
	Campaigns []record `yaml:"campaigns"`
}

type record struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	StartDate      string  `yaml:"start_date"`
	EndDate        string  `yaml:"end_date"`
	Status         string  `yaml:"status"`
	Progress       int     `yaml:"progress"`
	Conversions    int64   `yaml:"conversions"`
	Spend          float64 `yaml:"spend"`
	CTR            float64 `yaml:"ctr"`
	PipelineStatus string  `yaml:"pipeline_status"`
}

// YAMLRepository reads campaigns from a YAML fixture file. The file is read
// on every call so edits show up on the next render.
type YAMLRepository struct {
	path string
}

// NewYAMLRepository returns a repository backed by the file at path.
func NewYAMLRepository(path string) *YAMLRepository {
	return &YAMLRepository{path: path}
}

// ListCampaigns parses the fixture file.
func (r *YAMLRepository) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read fixture %q: %v", port.ErrSourceUnavailable, r.path, err)
	}
	return Parse(raw)
}

// Parse decodes fixture content into campaigns, keeping file order.
func Parse(raw []byte) ([]domain.Campaign, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("fixture: decode: %w", err)
	}
	out := make([]domain.Campaign, 0, len(f.Campaigns))
	for i, rec := range f.Campaigns {
		c, err := rec.toDomain()
		if err != nil {
			return nil, fmt.Errorf("fixture: campaign %d: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func (rec record) toDomain() (domain.Campaign, error) {
	start, err := parseDate(rec.StartDate)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := parseDate(rec.EndDate)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("end_date: %w", err)
	}
	id := uuid.NewSHA1(fileNamespace, []byte(rec.Name))
	if rec.ID != "" {
		if id, err = uuid.Parse(rec.ID); err != nil {
			return domain.Campaign{}, fmt.Errorf("id: %w", err)
		}
	}
	return domain.Campaign{
		ID:             id,
		Name:           rec.Name,
		StartDate:      start,
		EndDate:        end,
		Status:         domain.Status(rec.Status),
		Progress:       rec.Progress,
		Conversions:    rec.Conversions,
		Spend:          rec.Spend,
		CTR:            rec.CTR,
		PipelineStatus: domain.PipelineStatus(rec.PipelineStatus),
	}, nil
}

// parseDate accepts an empty value as the zero time.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}
