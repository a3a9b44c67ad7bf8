package checks

import (
	"context"
	"errors"

	"pokepc-dataset/core/dataset"
	"pokepc-dataset/core/reconcile"
	"pokepc-dataset/feature/catalog/models"

	"go.uber.org/zap"
)

// DeriveFunc returns the keys implied by the shards present.
type DeriveFunc func(src dataset.Source, keys []string, logger *zap.Logger) (reconcile.KeySet, error)

// ShardAdapter reconciles one sharded collection of a source.
// It implements reconcile.Adapter and reconcile.Mutator.
type ShardAdapter struct {
	src    dataset.Source
	name   string
	index  string
	dir    string
	derive DeriveFunc
	logger *zap.Logger
}

// NewShardAdapter creates an adapter for the collection whose index is index
// and whose shards live under dir. derive may be nil.
func NewShardAdapter(src dataset.Source, name, index, dir string, derive DeriveFunc, logger *zap.Logger) *ShardAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShardAdapter{
		src:    src,
		name:   name,
		index:  index,
		dir:    dir,
		derive: derive,
		logger: logger,
	}
}

// Name returns the collection name.
func (a *ShardAdapter) Name() string {
	return a.name
}

// LoadIndex reads the index document.
func (a *ShardAdapter) LoadIndex(ctx context.Context) ([]string, error) {
	return dataset.ReadIndex(a.src, a.index)
}

// LoadShards lists the shard documents. A missing directory is an empty set.
func (a *ShardAdapter) LoadShards(ctx context.Context) (reconcile.KeySet, error) {
	keys, err := a.src.List(a.dir)
	if err != nil {
		if errors.Is(err, dataset.ErrNotFound) {
			return reconcile.KeySet{}, nil
		}
		return nil, err
	}
	return reconcile.NewKeySet(keys...), nil
}

// LoadDerived derives keys from the shards present.
func (a *ShardAdapter) LoadDerived(ctx context.Context) (reconcile.KeySet, error) {
	if a.derive == nil {
		return nil, nil
	}
	shards, err := a.LoadShards(ctx)
	if err != nil {
		return nil, err
	}
	return a.derive(a.src, shards.Sorted(), a.logger)
}

// WriteIndex replaces the index document.
func (a *ShardAdapter) WriteIndex(ctx context.Context, keys []string) error {
	return dataset.WriteIndex(a.src, a.index, keys)
}

// DerivePokemon returns every pokemon id and form id of the pokemon shards keys.
func DerivePokemon(src dataset.Source, keys []string, logger *zap.Logger) (reconcile.KeySet, error) {
	shards, err := dataset.JoinFromIndex[models.Pokemon](src, "pokemon", "pokemon", keys, dataset.MissingSkip, logger)
	if err != nil {
		return nil, err
	}

	derived := make(reconcile.KeySet, len(shards))
	for _, p := range shards {
		derived.Add(p.ID)
		for _, form := range p.Forms {
			derived.Add(form)
		}
	}
	return derived, nil
}
