package dataset_test

import (
	"errors"
	"testing"

	"pokepc-dataset/core/dataset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (i item) Key() string { return i.ID }

func TestCollection(t *testing.T) {
	root := writeFixture(t, map[string]string{
		"items.json":  `[{"id":"potion","name":"Potion"},{"id":"antidote","name":"Antidote"},{"id":"potion","name":"Dup"}]`,
		"broken.json": `{"id":`,
	})
	src, err := dataset.NewDirSource(root)
	require.NoError(t, err)

	t.Run("AllKeepsFileOrder", func(t *testing.T) {
		c := dataset.NewCollection[item](src, "items", "items.json")
		all, err := c.All()
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "potion", all[0].ID)
		assert.Equal(t, "antidote", all[1].ID)
	})

	t.Run("ByKey", func(t *testing.T) {
		c := dataset.NewCollection[item](src, "items", "items.json")
		got, ok, err := c.ByKey("antidote")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Antidote", got.Name)

		got, ok, err = c.ByKey("potion")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Potion", got.Name, "first occurrence wins")

		_, ok, err = c.ByKey("elixir")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("MissingFileIsFatal", func(t *testing.T) {
		c := dataset.NewCollection[item](src, "moves", "moves.json")
		_, err := c.All()
		require.Error(t, err)

		var docErr *dataset.DocumentError
		require.True(t, errors.As(err, &docErr))
		assert.Equal(t, "moves", docErr.Key)
		assert.Equal(t, src.Location("moves.json"), docErr.Path)
		assert.True(t, dataset.IsNotFound(err))
	})

	t.Run("MalformedFileIsFatal", func(t *testing.T) {
		c := dataset.NewCollection[item](src, "broken", "broken.json")
		_, _, err := c.ByKey("x")
		assert.True(t, errors.Is(err, dataset.ErrMalformed))
	})

	t.Run("LoadedOnce", func(t *testing.T) {
		c := dataset.NewCollection[item](src, "items", "items.json")
		_, err := c.All()
		require.NoError(t, err)

		require.NoError(t, src.WriteFile("items.json", []byte(`[]`)))
		all, err := c.All()
		require.NoError(t, err)
		assert.Len(t, all, 3)

		c.Reload()
		all, err = c.All()
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("UntypedView", func(t *testing.T) {
		require.NoError(t, src.WriteFile("abilities.json", []byte(`[{"id":"static"}]`)))
		var l dataset.Listing = dataset.NewCollection[item](src, "abilities", "abilities.json")
		records, err := l.Records()
		require.NoError(t, err)
		assert.Len(t, records, 1)

		rec, ok, err := l.Record("static")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, item{ID: "static"}, rec)
		assert.Equal(t, "abilities", l.Name())
	})
}
