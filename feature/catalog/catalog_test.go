package catalog_test

import (
	"errors"
	"testing"
	"time"

	"pokepc-dataset/core/cache"
	"pokepc-dataset/core/dataset"
	"pokepc-dataset/feature/catalog"
	"pokepc-dataset/feature/catalog/catalogtest"
	"pokepc-dataset/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFlatCollections(t *testing.T) {
	cat := catalogtest.New(t, catalogtest.Dataset())

	items, err := cat.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "potion", items[0].ID)
	assert.Equal(t, "medicine", items[0].Category)

	natures, err := cat.Natures()
	require.NoError(t, err)
	require.Len(t, natures, 2)
	assert.Nil(t, natures[0].Raises)
	require.NotNil(t, natures[1].Raises)
	assert.Equal(t, "atk", *natures[1].Raises)

	gens, err := cat.Generations()
	require.NoError(t, err)
	assert.Equal(t, 151, gens[0].MaxDexNum)

	ability, ok, err := cat.Ability("blaze")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Blaze", ability.Name)

	_, ok, err = cat.Move("hyper-beam")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFlatCollectionMissingFile(t *testing.T) {
	cat := catalogtest.New(t, catalogtest.Dataset().Without("moves.json"))

	_, err := cat.Moves()
	require.Error(t, err)
	assert.True(t, dataset.IsNotFound(err))
	assert.Contains(t, err.Error(), "moves.json")
}

func TestShardedCollections(t *testing.T) {
	t.Run("IndexOrder", func(t *testing.T) {
		cat := catalogtest.New(t, catalogtest.Dataset())

		pokemon, err := cat.Pokemon()
		require.NoError(t, err)
		require.Len(t, pokemon, 3)
		assert.Equal(t, "bulbasaur", pokemon[0].ID)
		assert.Equal(t, "charmander-gmax", pokemon[2].ID)
		assert.Equal(t, 4, pokemon[1].DexNum.Int())

		games, err := cat.Games()
		require.NoError(t, err)
		assert.Len(t, games, 4)

		dexes, err := cat.Pokedexes()
		require.NoError(t, err)
		require.Len(t, dexes, 1)
		assert.Len(t, dexes[0].Entries, 2)
	})

	t.Run("MissingShardIsFatal", func(t *testing.T) {
		files := catalogtest.Dataset().With("indices/pokemon.json", `["bulbasaur","mew"]`)
		cat := catalogtest.New(t, files)

		_, err := cat.Pokemon()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pokemon mew not found at")
		assert.Contains(t, err.Error(), cat.Source().Location("pokemon/mew.json"))
	})

	t.Run("MissingIndexIsFatal", func(t *testing.T) {
		cat := catalogtest.New(t, catalogtest.Dataset().Without("indices/games.json"))

		_, err := cat.Games()
		var docErr *dataset.DocumentError
		require.True(t, errors.As(err, &docErr))
		assert.Equal(t, "games", docErr.Key)
	})

	t.Run("Cached", func(t *testing.T) {
		cat := catalogtest.New(t, catalogtest.Dataset())

		first, err := cat.Pokemon()
		require.NoError(t, err)

		require.NoError(t, cat.Source().WriteFile("indices/pokemon.json", []byte(`["bulbasaur"]`)))
		second, err := cat.Pokemon()
		require.NoError(t, err)
		assert.Len(t, second, len(first), "served from cache within the TTL")

		cat.Reload()
		third, err := cat.Pokemon()
		require.NoError(t, err)
		assert.Len(t, third, 1)
	})

	t.Run("Expiry", func(t *testing.T) {
		now := time.Unix(0, 0)
		c := cache.New(10*time.Second, cache.WithClock(func() time.Time { return now }))
		cat := catalog.New(catalogtest.Write(t, catalogtest.Dataset()), c, nil)

		_, err := cat.Games()
		require.NoError(t, err)
		require.NoError(t, cat.Source().WriteFile("indices/games.json", []byte(`["rb"]`)))

		now = now.Add(11 * time.Second)
		games, err := cat.Games()
		require.NoError(t, err)
		assert.Len(t, games, 1)
	})
}

func TestGameSets(t *testing.T) {
	cat := catalogtest.New(t, catalogtest.Dataset())

	sets, err := cat.GameSets()
	require.NoError(t, err)

	ids := make([]string, len(sets))
	for i, g := range sets {
		ids[i] = g.ID
	}
	assert.Equal(t, []string{"rb", "yellow"}, ids)
}

func TestBoxPresets(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	src := catalogtest.Write(t, catalogtest.Dataset())
	cat := catalog.New(src, cache.New(time.Minute), zap.New(core))

	groups, err := cat.BoxPresets("")
	require.NoError(t, err)
	require.Len(t, groups, 1, "yellow has no preset document")
	assert.Equal(t, "rb", groups[0].GameSet)
	require.Len(t, groups[0].Presets, 2)
	assert.Equal(t, "fill", groups[0].Presets[0].ID)
	assert.Equal(t, "empty", groups[0].Presets[1].ID)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "yellow", logs.All()[0].ContextMap()["key"])

	t.Run("ModernEmpty", func(t *testing.T) {
		groups, err := cat.BoxPresets(models.VariantModern)
		require.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("UnknownVariant", func(t *testing.T) {
		_, err := cat.BoxPresets("retro")
		assert.Error(t, err)
	})
}

func TestRegeneratePokemonIndex(t *testing.T) {
	files := catalogtest.Dataset().With("indices/pokemon.json", `["charmander","bulbasaur"]`)
	cat := catalogtest.New(t, files)

	index, err := cat.RegeneratePokemonIndex()
	require.NoError(t, err)
	assert.Equal(t, []string{"charmander", "charmander-gmax", "bulbasaur"}, index)

	data, err := cat.Source().ReadFile("indices/pokemon.json")
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"charmander\",\n  \"charmander-gmax\",\n  \"bulbasaur\"\n]", string(data))

	pokemon, err := cat.Pokemon()
	require.NoError(t, err)
	assert.Len(t, pokemon, 3, "cached list is dropped after regeneration")
}

func TestLookup(t *testing.T) {
	cat := catalogtest.New(t, catalogtest.Dataset())

	assert.Contains(t, cat.CollectionNames(), catalog.Pokemon)
	assert.Contains(t, cat.CollectionNames(), catalog.Items)
	assert.Len(t, cat.CollectionNames(), 18)

	l, ok := cat.Lookup(catalog.Pokedexes)
	require.True(t, ok)
	rec, ok, err := l.Record("kanto")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "kanto", rec.(models.Pokedex).ID)

	l, ok = cat.Lookup(catalog.Generations)
	require.True(t, ok)
	_, ok, err = l.Record("1")
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok = cat.Lookup("trainers")
	assert.False(t, ok)
}

func TestDocuments(t *testing.T) {
	cat := catalogtest.New(t, catalogtest.Dataset())

	docs := cat.Documents()
	require.Len(t, docs, 18)
	assert.Equal(t, "abilities.json", docs[0])
	assert.Equal(t, []string{"indices/pokemon.json", "indices/games.json", "indices/pokedexes.json"}, docs[15:])

	for _, doc := range docs {
		ok, err := cat.Source().Exists(doc)
		require.NoError(t, err)
		assert.True(t, ok, doc)
	}
}

func TestGameDescription(t *testing.T) {
	region := "kanto"
	g := models.Game{
		Entity:    models.Entity{ID: "yellow", Name: "Yellow"},
		Gen:       1,
		Type:      models.GameTypeGame,
		Series:    "main",
		Platforms: []string{"gb", "gbc"},
		Region:    &region,
	}

	label := catalog.GameCategoryLabel(g)
	assert.Equal(t, "Main-series", label)
	assert.Equal(t,
		"Pokémon Yellow is a Main-series game  from Generation 1 released for GB / GBC. The game takes place in the Kanto region.",
		catalog.GameDescription(g, label))

	g.Series = "spinoff"
	g.Gen = 0
	g.Region = nil
	assert.Equal(t, "Pokémon Yellow is a Spin-off game released for GB / GBC.", catalog.GameDescription(g, catalog.GameCategoryLabel(g)))
}
