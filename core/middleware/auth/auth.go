package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// Header carries the API key.
const Header = "X-API-Key"

// Config configures the API key guard.
type Config struct {
	// ApiKey is the expected key. Empty disables the guard.
	ApiKey string
	// Methods restricts the guard to these HTTP methods. Empty guards every method.
	Methods []string
}

// New returns a middleware rejecting requests without the configured API key.
func New(cfg Config) fiber.Handler {
	guarded := make(map[string]bool, len(cfg.Methods))
	for _, m := range cfg.Methods {
		guarded[m] = true
	}

	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}
		if len(guarded) > 0 && !guarded[c.Method()] {
			return c.Next()
		}

		key := c.Get(Header)
		if key == "" {
			key = c.Query("api_key")
		}
		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or missing API key"})
		}
		return c.Next()
	}
}
