package reconcile

import "context"

// Adapter loads the key sets of one sharded collection.
type Adapter interface {
	// Name returns the collection name (e.g., "pokemon", "games").
	Name() string

	// LoadIndex returns the keys listed in the index document, in order.
	LoadIndex(ctx context.Context) ([]string, error)

	// LoadShards returns the keys of the shard documents present.
	LoadShards(ctx context.Context) (KeySet, error)

	// LoadDerived returns the keys implied by shard contents, or nil when the
	// collection has none.
	LoadDerived(ctx context.Context) (KeySet, error)
}

// Mutator is implemented by adapters that can rewrite their index.
type Mutator interface {
	// WriteIndex replaces the index document with keys.
	WriteIndex(ctx context.Context, keys []string) error
}
