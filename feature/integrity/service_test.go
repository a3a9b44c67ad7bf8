package integrity

import (
	"context"
	"testing"

	"pokepc-dataset/core/dataset"
	"pokepc-dataset/feature/catalog/catalogtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RunAll(t *testing.T) {
	ctx := context.Background()

	t.Run("consistent dataset", func(t *testing.T) {
		svc := NewService(catalogtest.New(t, catalogtest.Dataset()), nil, false)
		report := svc.RunAll(ctx)

		assert.True(t, report.OK)
		assert.Empty(t, report.Errors)
		require.NotNil(t, report.Structure)
		assert.Empty(t, report.Structure.Missing)
		assert.Len(t, report.Indices, 3)
		require.NotNil(t, report.Uniqueness)
		require.NotNil(t, report.References)
	})

	t.Run("failed check is reported", func(t *testing.T) {
		svc := NewService(catalogtest.New(t, catalogtest.Dataset().Without("regions.json")), nil, false)
		report := svc.RunAll(ctx)

		assert.False(t, report.OK)
		assert.Equal(t, []string{"regions.json"}, report.Structure.Missing)
		assert.Contains(t, report.Errors, "uniqueness")
		assert.Contains(t, report.Errors, "references")
		assert.NotContains(t, report.Errors, "indices")
		assert.Nil(t, report.References)
	})

	t.Run("reference issue", func(t *testing.T) {
		files := catalogtest.Dataset().With("pokedexes/kanto.json", `{"id":"kanto","name":"Kanto","entries":[{"pid":"mew","dexNum":151}]}`)
		report := NewService(catalogtest.New(t, files), nil, false).RunAll(ctx)

		assert.False(t, report.OK)
		require.NotNil(t, report.References)
		require.Len(t, report.References.Issues, 1)
		assert.Equal(t, "mew", report.References.Issues[0].Value)
	})
}

func TestService_Indices(t *testing.T) {
	ctx := context.Background()
	files := catalogtest.Dataset().
		With("indices/pokemon.json", `["bulbasaur","charmander","charmander-gmax","missingno"]`).
		With("pokemon/mew.json", `{"id":"mew","names":{"eng":"Mew"},"forms":[]}`)

	t.Run("check does not plan edits", func(t *testing.T) {
		svc := NewService(catalogtest.New(t, files), nil, false)
		plans, err := svc.CheckIndices(ctx)
		require.NoError(t, err)
		require.Len(t, plans, 3)
		assert.Equal(t, "pokemon", plans[0].Collection)
		assert.Equal(t, 1, plans[0].Summary.MissingIndex)
		assert.Equal(t, 1, plans[0].Summary.MissingShard)
		assert.Empty(t, plans[0].Actions)
		assert.True(t, plans[1].Summary.Consistent())
	})

	t.Run("fix rewrites the index and reloads", func(t *testing.T) {
		cat := catalogtest.New(t, files)
		svc := NewService(cat, nil, false)

		_, err := cat.Pokemon()
		require.Error(t, err)

		plans, executed, err := svc.FixIndices(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, executed)
		assert.Len(t, plans, 3)

		keys, err := dataset.ReadIndex(cat.Source(), dataset.IndexPokemon)
		require.NoError(t, err)
		assert.Equal(t, []string{"bulbasaur", "charmander", "charmander-gmax", "mew"}, keys)

		pokemon, err := cat.Pokemon()
		require.NoError(t, err)
		assert.Len(t, pokemon, 4)

		plans, err = svc.CheckIndices(ctx)
		require.NoError(t, err)
		for _, p := range plans {
			assert.True(t, p.Summary.Consistent(), p.Collection)
		}
	})

	t.Run("read-only", func(t *testing.T) {
		cat := catalogtest.New(t, files)
		_, _, err := NewService(cat, nil, true).FixIndices(ctx)
		assert.ErrorIs(t, err, ErrReadOnly)

		keys, err := dataset.ReadIndex(cat.Source(), dataset.IndexPokemon)
		require.NoError(t, err)
		assert.Contains(t, keys, "missingno")
	})
}
