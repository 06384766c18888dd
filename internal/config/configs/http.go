package configs

import "time"

// HTTP defines configuration for the dashboard HTTP server.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080" validate:"gt=0"`
	// ReadTimeout and WriteTimeout bound a single request.
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	// ShutdownTimeout bounds graceful shutdown after a termination signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// RateLimit is the number of requests a single client IP may make per
	// minute. Zero disables rate limiting.
	RateLimit int `env:"RATE_LIMIT" envDefault:"120" validate:"gte=0"`
	// Secure turns on HTTPS redirects when running behind a TLS proxy.
	Secure bool `env:"SECURE" envDefault:"false"`
}
