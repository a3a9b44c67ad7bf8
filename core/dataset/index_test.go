package dataset_test

import (
	"errors"
	"testing"

	"pokepc-dataset/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type shard struct {
	ID string `json:"id"`
}

func TestReadIndex(t *testing.T) {
	root := writeFixture(t, map[string]string{
		"indices/games.json": `["red","blue"]`,
	})
	src, err := dataset.NewDirSource(root)
	require.NoError(t, err)

	t.Run("Ordered", func(t *testing.T) {
		keys, err := dataset.ReadIndex(src, dataset.IndexGames)
		require.NoError(t, err)
		assert.Equal(t, []string{"red", "blue"}, keys)
	})

	t.Run("MissingIsFatal", func(t *testing.T) {
		_, err := dataset.ReadIndex(src, dataset.IndexPokemon)
		var docErr *dataset.DocumentError
		require.True(t, errors.As(err, &docErr))
		assert.Equal(t, "index", docErr.Kind)
		assert.Equal(t, "pokemon", docErr.Key)
	})

	t.Run("WriteIndented", func(t *testing.T) {
		require.NoError(t, dataset.WriteIndex(src, dataset.IndexPokedexes, []string{"kanto", "johto"}))
		data, err := src.ReadFile("indices/pokedexes.json")
		require.NoError(t, err)
		assert.Equal(t, "[\n  \"kanto\",\n  \"johto\"\n]", string(data))
	})

	t.Run("WriteEmpty", func(t *testing.T) {
		require.NoError(t, dataset.WriteIndex(src, "empty", nil))
		data, err := src.ReadFile("indices/empty.json")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})
}

func TestJoinFromIndex(t *testing.T) {
	root := writeFixture(t, map[string]string{
		"pokemon/bulbasaur.json":  `{"id":"bulbasaur"}`,
		"pokemon/charmander.json": `{"id":"charmander"}`,
		"pokemon/broken.json":     `not json`,
	})
	src, err := dataset.NewDirSource(root)
	require.NoError(t, err)

	t.Run("IndexOrder", func(t *testing.T) {
		docs, err := dataset.JoinFromIndex[shard](src, "pokemon", "pokemon", []string{"charmander", "bulbasaur"}, dataset.MissingFatal, nil)
		require.NoError(t, err)
		assert.Equal(t, []shard{{ID: "charmander"}, {ID: "bulbasaur"}}, docs)
	})

	t.Run("MissingShardFatal", func(t *testing.T) {
		_, err := dataset.JoinFromIndex[shard](src, "pokemon", "pokemon", []string{"bulbasaur", "mew"}, dataset.MissingFatal, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pokemon mew not found at")
		assert.Contains(t, err.Error(), src.Location("pokemon/mew.json"))
	})

	t.Run("MissingShardSkipped", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		shards, err := dataset.JoinShards[shard](src, "boxpreset", "pokemon", []string{"mew", "bulbasaur"}, dataset.MissingSkip, zap.New(core))
		require.NoError(t, err)
		require.Len(t, shards, 1)
		assert.Equal(t, "bulbasaur", shards[0].Key)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, "mew", entry.ContextMap()["key"])
		assert.Equal(t, src.Location("pokemon/mew.json"), entry.ContextMap()["path"])
	})

	t.Run("MalformedShardAlwaysFatal", func(t *testing.T) {
		_, err := dataset.JoinFromIndex[shard](src, "pokemon", "pokemon", []string{"broken"}, dataset.MissingSkip, nil)
		assert.True(t, errors.Is(err, dataset.ErrMalformed))
	})
}
