package server

import "github.com/gofiber/fiber/v2"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitKB caps request bodies, which bounds pasted import text.
	BodyLimitKB int `mapstructure:"body_limit_kb" default:"4096"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}

// BodyLimit returns the request body limit in bytes.
func (c Config) BodyLimit() int {
	if c.BodyLimitKB <= 0 {
		return 4096 * 1024
	}
	return c.BodyLimitKB * 1024
}

// FiberConfig returns the fiber settings the HTTP server runs with.
// Immutable makes c.Params, c.Query and body strings safe to keep past the
// request, since catalogs and stores hold on to sources and ids.
func (c Config) FiberConfig() fiber.Config {
	return fiber.Config{
		DisableStartupMessage: true,
		Immutable:             true,
		BodyLimit:             c.BodyLimit(),
	}
}
