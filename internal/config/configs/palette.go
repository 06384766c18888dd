package configs

import "campaign-dashboard/internal/core/dashboard"

// Palette maps the semantic color roles of the dashboard to hex colors.
// Defaults reproduce the brand palette.
type Palette struct {
	Primary        string `env:"PRIMARY" envDefault:"#1A1F71" validate:"hexcolor"`
	Secondary      string `env:"SECONDARY" envDefault:"#FFB600" validate:"hexcolor"`
	Accent         string `env:"ACCENT" envDefault:"#00A651" validate:"hexcolor"`
	PipelineAccent string `env:"PIPELINE_ACCENT" envDefault:"#00A651" validate:"hexcolor"`
	Warning        string `env:"WARNING" envDefault:"#FFB600" validate:"hexcolor"`
	Neutral        string `env:"NEUTRAL" envDefault:"#333333" validate:"hexcolor"`
}

// Dashboard converts the configuration into the palette injected into the
// view functions.
func (p Palette) Dashboard() dashboard.Palette {
	return dashboard.Palette{
		Primary:        p.Primary,
		Secondary:      p.Secondary,
		Accent:         p.Accent,
		PipelineAccent: p.PipelineAccent,
		Warning:        p.Warning,
		Neutral:        p.Neutral,
	}
}
