package catalog_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"pokepc-dataset/feature/catalog"
	"pokepc-dataset/feature/catalog/catalogtest"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, files catalogtest.Files, readOnly bool) *fiber.App {
	app := fiber.New()
	feature := catalog.NewFeature(catalogtest.New(t, files), zap.NewNop(), readOnly)
	require.NoError(t, feature.Load(app))
	return app
}

func decode(t *testing.T, app *fiber.App, method, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(method, path, nil))
	require.NoError(t, err)

	var body map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp.StatusCode, body
}

func TestHandler(t *testing.T) {
	app := setupTestApp(t, catalogtest.Dataset(), false)

	t.Run("Collections", func(t *testing.T) {
		status, body := decode(t, app, "GET", "/catalog")
		assert.Equal(t, 200, status)
		assert.Len(t, body["collections"], 18)
	})

	t.Run("List", func(t *testing.T) {
		status, body := decode(t, app, "GET", "/catalog/abilities")
		assert.Equal(t, 200, status)
		assert.Equal(t, float64(4), body["total"])
	})

	t.Run("Get", func(t *testing.T) {
		status, body := decode(t, app, "GET", "/catalog/pokemon/charmander")
		assert.Equal(t, 200, status)
		assert.Equal(t, "0004", body["dexNum"])
	})

	t.Run("GetMissing", func(t *testing.T) {
		status, body := decode(t, app, "GET", "/catalog/items/elixir")
		assert.Equal(t, 404, status)
		assert.Equal(t, "items elixir not found", body["error"])
	})

	t.Run("UnknownCollection", func(t *testing.T) {
		status, _ := decode(t, app, "GET", "/catalog/trainers")
		assert.Equal(t, 404, status)
	})

	t.Run("GameSets", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/catalog/gamesets", nil))
		require.NoError(t, err)
		var sets []map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&sets))
		require.Len(t, sets, 2)
		assert.Equal(t, "rb", sets[0]["id"])
		assert.Equal(t, "Main-series", sets[0]["category"])
	})

	t.Run("BoxPresets", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/catalog/boxpresets/classic", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		status, _ := decode(t, app, "GET", "/catalog/boxpresets/retro")
		assert.Equal(t, 400, status)
	})

	t.Run("Regenerate", func(t *testing.T) {
		status, body := decode(t, app, "POST", "/catalog/indices/pokemon")
		assert.Equal(t, 200, status)
		assert.Equal(t, "regenerated", body["status"])
		assert.Equal(t, float64(3), body["total"])
	})
}

func TestHandlerDatasetError(t *testing.T) {
	app := setupTestApp(t, catalogtest.Dataset().Without("indices/games.json"), false)

	status, body := decode(t, app, "GET", "/catalog/gamesets")
	assert.Equal(t, 500, status)
	assert.Contains(t, body["error"], "index games not found")
}

func TestHandlerReadOnly(t *testing.T) {
	app := setupTestApp(t, catalogtest.Dataset(), true)

	status, _ := decode(t, app, "POST", "/catalog/indices/pokemon")
	assert.Equal(t, 403, status)
}
