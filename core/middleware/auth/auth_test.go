package auth_test

import (
	"net/http/httptest"
	"testing"

	"pokepc-dataset/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/pokemon", ok)
	app.Post("/catalog/indices/pokemon", ok)
	return app
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name   string
		cfg    auth.Config
		method string
		path   string
		header string
		want   int
	}{
		{"Disabled", auth.Config{}, "GET", "/pokemon", "", 200},
		{"MissingKey", auth.Config{ApiKey: "k"}, "GET", "/pokemon", "", 401},
		{"WrongKey", auth.Config{ApiKey: "k"}, "GET", "/pokemon", "nope", 401},
		{"ValidKey", auth.Config{ApiKey: "k"}, "GET", "/pokemon", "k", 200},
		{"UnguardedMethod", auth.Config{ApiKey: "k", Methods: []string{"POST"}}, "GET", "/pokemon", "", 200},
		{"GuardedMethod", auth.Config{ApiKey: "k", Methods: []string{"POST"}}, "POST", "/catalog/indices/pokemon", "", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(auth.Header, tt.header)
			}
			resp, err := newApp(tt.cfg).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}

	t.Run("QueryParameter", func(t *testing.T) {
		resp, err := newApp(auth.Config{ApiKey: "k"}).Test(httptest.NewRequest("GET", "/pokemon?api_key=k", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})
}
