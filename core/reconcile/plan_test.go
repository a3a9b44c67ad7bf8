package reconcile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan(t *testing.T) {
	adapter := &mockAdapter{
		index:   []string{"bulbasaur", "mew", "charmander"},
		shards:  NewKeySet("bulbasaur", "charmander", "charmander-gmax", "pikachu"),
		derived: NewKeySet("bulbasaur", "charmander", "charmander-gmax", "raichu"),
	}

	t.Run("ReportOnly", func(t *testing.T) {
		plan, err := BuildPlan(context.Background(), adapter, Options{})
		require.NoError(t, err)

		assert.Equal(t, "mock", plan.Collection)
		assert.Len(t, plan.Results, 6)
		assert.Empty(t, plan.Actions)
		assert.Equal(t, Summary{
			TotalKeys:      6,
			MissingIndex:   3, // charmander-gmax, pikachu, raichu
			MissingShard:   2, // mew, raichu
			MissingDerived: 2, // mew, pikachu
		}, plan.Summary)
		assert.False(t, plan.Summary.Consistent())
	})

	t.Run("Fix", func(t *testing.T) {
		plan, err := BuildPlan(context.Background(), adapter, Options{DoFix: true})
		require.NoError(t, err)

		assert.Equal(t, []Action{
			{Type: ActionAddToIndex, Key: "charmander-gmax", Reason: "missing in: index"},
			{Type: ActionRemoveFromIndex, Key: "mew", Reason: "missing in: shards, derived"},
			{Type: ActionAddToIndex, Key: "pikachu", Reason: "missing in: index, derived"},
		}, plan.Actions)
		assert.Equal(t, 3, plan.Summary.IndexActions)
		assert.Equal(t, []string{"bulbasaur", "charmander", "charmander-gmax", "pikachu"}, plan.EditedIndex())
	})
}

func TestApplyPlan(t *testing.T) {
	newAdapter := func() *mockAdapter {
		return &mockAdapter{
			index:  []string{"red", "gold"},
			shards: NewKeySet("red", "blue"),
		}
	}

	t.Run("RequiresConfirmation", func(t *testing.T) {
		adapter := newAdapter()
		plan, err := BuildPlan(context.Background(), adapter, Options{DoFix: true})
		require.NoError(t, err)

		executed, err := ApplyPlan(context.Background(), adapter, plan, Options{DoFix: true})
		require.NoError(t, err)
		assert.Zero(t, executed)

		executed, err = ApplyPlan(context.Background(), adapter, plan, Options{DoFix: true, Confirmed: true, DryRun: true})
		require.NoError(t, err)
		assert.Zero(t, executed)
		assert.Empty(t, adapter.written)
	})

	t.Run("Writes", func(t *testing.T) {
		adapter := newAdapter()
		opts := Options{DoFix: true, Confirmed: true}
		plan, err := BuildPlan(context.Background(), adapter, opts)
		require.NoError(t, err)

		executed, err := ApplyPlan(context.Background(), adapter, plan, opts)
		require.NoError(t, err)
		assert.Equal(t, 2, executed)
		assert.Equal(t, [][]string{{"red", "blue"}}, adapter.written)
	})

	t.Run("NotMutator", func(t *testing.T) {
		adapter := readOnlyAdapter{newAdapter()}
		opts := Options{DoFix: true, Confirmed: true}
		plan, err := BuildPlan(context.Background(), adapter, opts)
		require.NoError(t, err)

		_, err = ApplyPlan(context.Background(), adapter, plan, opts)
		assert.EqualError(t, err, "adapter mock does not implement Mutator interface")
	})
}
