package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"pokepc-dataset/core/i18n"
	"pokepc-dataset/feature/catalog/catalogtest"
	"pokepc-dataset/feature/pokemon"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSearchFilter(t *testing.T) {
	t.Cleanup(func() {
		searchGen, searchLang, searchColor, searchType = 0, string(i18n.Base), "", ""
		searchForms, searchShiny = false, false
	})

	require.NoError(t, searchCmd.ParseFlags([]string{"--gen", "1", "--type", "fire", "--forms", "--lang", "de"}))
	f := searchFilter(nil)
	assert.Equal(t, pokemon.Filter{Gen: 1, Type: "fire", Forms: true, Lang: i18n.German}, f)
	assert.False(t, f.RequiresQuery())

	assert.Equal(t, "char", searchFilter([]string{"char"}).Q)
}

func TestRunSearch(t *testing.T) {
	svc := pokemon.NewService(catalogtest.New(t, catalogtest.Dataset()), nil, zap.NewNop())

	t.Run("FiltersWithoutQuery", func(t *testing.T) {
		var out bytes.Buffer
		f := pokemon.Filter{Gen: 1, Type: "fire", Forms: true, Lang: i18n.English}
		require.NoError(t, runSearch(&out, svc, f, true, zap.NewNop()))

		var res pokemon.Result
		require.NoError(t, json.Unmarshal(out.Bytes(), &res))
		assert.False(t, res.Meta.Skipped)
		require.Len(t, res.Records, 2)
		assert.Equal(t, "charmander", res.Records[0].ID)
		assert.Equal(t, "charmander-gmax", res.Records[1].ID)
	})

	t.Run("Table", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runSearch(&out, svc, pokemon.Filter{Q: "bulba"}, false, zap.NewNop()))
		assert.Contains(t, out.String(), "bulbasaur")
		assert.Contains(t, out.String(), "1 of 3 pokemon")
	})

	t.Run("ShortQuery", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runSearch(&out, svc, pokemon.Filter{Q: "b", Type: "fire"}, false, zap.NewNop()))
		assert.Contains(t, out.String(), "Query too short (minimum 2 characters), 3 pokemon not filtered")
	})
}
