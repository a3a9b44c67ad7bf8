package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"pokepc-dataset/feature/catalog/catalogtest"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestApp(t *testing.T, files catalogtest.Files, readOnly bool) *fiber.App {
	app := fiber.New()
	svc := NewService(catalogtest.New(t, files), nil, readOnly)
	NewHandler(svc).RegisterRoutes(app)
	return app
}

func decode(t *testing.T, app *fiber.App, target string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestHandleIntegrityCheck(t *testing.T) {
	app := setupTestApp(t, catalogtest.Dataset(), false)

	status, body := decode(t, app, "/integrity")
	assert.Equal(t, 200, status)
	assert.Equal(t, true, body["ok"])
	assert.Len(t, body["indices"], 3)
}

func TestHandleStructureCheck(t *testing.T) {
	app := setupTestApp(t, catalogtest.Dataset().Without("colors.json"), false)

	status, body := decode(t, app, "/integrity/structure")
	assert.Equal(t, 200, status)
	assert.Equal(t, []any{"colors.json"}, body["missing"])
	assert.EqualValues(t, 18, body["checked"])
}

func TestHandleIndicesCheck(t *testing.T) {
	files := catalogtest.Dataset().Without("games/yellow.json")

	t.Run("check", func(t *testing.T) {
		app := setupTestApp(t, files, false)
		status, body := decode(t, app, "/integrity/indices")
		assert.Equal(t, 200, status)
		assert.Equal(t, "checked", body["status"])
		assert.Len(t, body["plans"], 3)
	})

	t.Run("fix", func(t *testing.T) {
		app := setupTestApp(t, files, false)
		status, body := decode(t, app, "/integrity/indices?fix=true")
		assert.Equal(t, 200, status)
		assert.Equal(t, "fixed", body["status"])
		assert.EqualValues(t, 1, body["executed"])
	})

	t.Run("fix while read-only", func(t *testing.T) {
		app := setupTestApp(t, files, true)
		status, body := decode(t, app, "/integrity/indices?fix=1")
		assert.Equal(t, 403, status)
		assert.Equal(t, "dataset is read-only", body["error"])
	})

	t.Run("missing index", func(t *testing.T) {
		app := setupTestApp(t, catalogtest.Dataset().Without("indices/pokedexes.json"), false)
		status, body := decode(t, app, "/integrity/indices")
		assert.Equal(t, 500, status)
		assert.Contains(t, body["error"], "not found")
	})
}

func TestHandleUniquenessCheck(t *testing.T) {
	files := catalogtest.Dataset().With("games/blue.json", `{"id":"blue","name":"Blue","nameSlug":"red-blue","type":"game"}`)
	app := setupTestApp(t, files, false)

	status, body := decode(t, app, "/integrity/uniqueness")
	assert.Equal(t, 200, status)
	issues, ok := body["issues"].([]any)
	require.True(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, "nameSlug already used by rb", issues[0].(map[string]any)["message"])
}

func TestHandleReferencesCheck(t *testing.T) {
	t.Run("clean", func(t *testing.T) {
		app := setupTestApp(t, catalogtest.Dataset(), false)
		status, body := decode(t, app, "/integrity/references")
		assert.Equal(t, 200, status)
		assert.Empty(t, body["issues"])
	})

	t.Run("load failure", func(t *testing.T) {
		app := setupTestApp(t, catalogtest.Dataset().Without("pokemon/bulbasaur.json"), false)
		status, body := decode(t, app, "/integrity/references")
		assert.Equal(t, 500, status)
		assert.Contains(t, body["error"], "pokemon bulbasaur not found at")
	})
}
