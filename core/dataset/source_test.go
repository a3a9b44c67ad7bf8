package dataset_test

import (
	"errors"
	"path/filepath"
	"testing"

	"pokepc-dataset/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirSource(t *testing.T) {
	root := writeFixture(t, map[string]string{
		"items.json":           `[]`,
		"pokemon/pikachu.json": `{"id":"pikachu"}`,
		"pokemon/eevee.json":   `{"id":"eevee"}`,
		"pokemon/README.md":    `notes`,
		"pokemon/forms/x.json": `{}`,
	})
	src, err := dataset.NewDirSource(root)
	require.NoError(t, err)

	t.Run("ReadFile", func(t *testing.T) {
		data, err := src.ReadFile("pokemon/pikachu.json")
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"pikachu"}`, string(data))
	})

	t.Run("ReadMissing", func(t *testing.T) {
		_, err := src.ReadFile("moves.json")
		assert.True(t, errors.Is(err, dataset.ErrNotFound))
	})

	t.Run("Exists", func(t *testing.T) {
		ok, err := src.Exists("items.json")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = src.Exists("pokemon")
		require.NoError(t, err)
		assert.False(t, ok, "directories are not documents")

		ok, err = src.Exists("nope.json")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("List", func(t *testing.T) {
		keys, err := src.List("pokemon")
		require.NoError(t, err)
		assert.Equal(t, []string{"eevee", "pikachu"}, keys)
	})

	t.Run("ListMissingDir", func(t *testing.T) {
		_, err := src.List("games")
		assert.True(t, dataset.IsNotFound(err))
	})

	t.Run("WriteCreatesParents", func(t *testing.T) {
		require.NoError(t, src.WriteFile("indices/pokemon.json", []byte(`["a"]`)))
		data, err := src.ReadFile("indices/pokemon.json")
		require.NoError(t, err)
		assert.Equal(t, `["a"]`, string(data))
	})

	t.Run("Walk", func(t *testing.T) {
		var names []string
		require.NoError(t, src.Walk(func(name string) error {
			names = append(names, name)
			return nil
		}))
		assert.Contains(t, names, "pokemon/forms/x.json")
		assert.Contains(t, names, "items.json")
	})

	t.Run("Location", func(t *testing.T) {
		assert.Equal(t, filepath.Join(src.Root(), "pokemon", "eevee.json"), src.Location("pokemon/eevee.json"))
	})
}

func TestDocumentError(t *testing.T) {
	t.Run("NotFoundMessage", func(t *testing.T) {
		err := &dataset.DocumentError{Kind: "pokemon", Key: "mew", Path: "/data/pokemon/mew.json", Err: dataset.ErrNotFound}
		assert.Equal(t, "pokemon mew not found at /data/pokemon/mew.json", err.Error())
		assert.True(t, dataset.IsNotFound(err))
	})

	t.Run("MalformedMessage", func(t *testing.T) {
		err := &dataset.DocumentError{Kind: "collection", Key: "items", Path: "/data/items.json", Err: dataset.ErrMalformed}
		assert.Contains(t, err.Error(), "collection items could not be loaded from /data/items.json")
		assert.True(t, errors.Is(err, dataset.ErrMalformed))
		assert.False(t, dataset.IsNotFound(err))
	})
}
