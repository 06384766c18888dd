package configs

// App holds the page texts that frame the dashboard.
type App struct {
	Title    string `env:"TITLE" envDefault:"Bank Campaign Experiments Dashboard"`
	Subtitle string `env:"SUBTITLE" envDefault:"Monitor, analyze, and manage your campaigns efficiently."`
	Footer   string `env:"FOOTER" envDefault:"© 2025 Bank Campaign Platform"`
}
