package dashboard

// Palette maps semantic roles to color values. Colors are opaque strings to
// this package; the HTML adapter expects CSS colors, the terminal adapter
// hex codes.
type Palette struct {
	Primary        string // page and section headings
	Secondary      string // secondary headings, sidebar counter
	Accent         string // active campaign status
	PipelineAccent string // healthy or completed pipeline
	Warning        string // any other pipeline status
	Neutral        string // any non-active campaign status
}

// DefaultPalette is the brand palette the dashboard ships with.
func DefaultPalette() Palette {
	return Palette{
		Primary:        "#1A1F71",
		Secondary:      "#FFB600",
		Accent:         "#00A651",
		PipelineAccent: "#00A651",
		Warning:        "#FFB600",
		Neutral:        "#333333",
	}
}
