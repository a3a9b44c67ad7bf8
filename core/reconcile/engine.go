package reconcile

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

// snapshot holds the key sets of one collection.
type snapshot struct {
	index   []string
	indexed KeySet
	shards  KeySet
	derived KeySet
}

// load builds the three key sets concurrently.
func load(ctx context.Context, adapter Adapter) (*snapshot, error) {
	var s snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		keys, err := adapter.LoadIndex(ctx)
		if err != nil {
			return fmt.Errorf("%s index: %w", adapter.Name(), err)
		}
		s.index = keys
		return nil
	})
	g.Go(func() error {
		keys, err := adapter.LoadShards(ctx)
		if err != nil {
			return fmt.Errorf("%s shards: %w", adapter.Name(), err)
		}
		s.shards = keys
		return nil
	})
	g.Go(func() error {
		keys, err := adapter.LoadDerived(ctx)
		if err != nil {
			return fmt.Errorf("%s derived keys: %w", adapter.Name(), err)
		}
		s.derived = keys
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.indexed = NewKeySet(s.index...)
	if s.shards == nil {
		s.shards = KeySet{}
	}
	return &s, nil
}

// Reconcile returns one result per key across the index, shard and derived sets,
// sorted by key.
func Reconcile(ctx context.Context, adapter Adapter) ([]Result, error) {
	s, err := load(ctx, adapter)
	if err != nil {
		return nil, err
	}
	return s.results(), nil
}

func (s *snapshot) results() []Result {
	union := s.union()
	results := make([]Result, 0, len(union))
	for key := range union {
		results = append(results, s.result(key))
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})
	return results
}

func (s *snapshot) union() KeySet {
	union := make(KeySet, len(s.indexed)+len(s.shards))
	for key := range s.indexed {
		union.Add(key)
	}
	for key := range s.shards {
		union.Add(key)
	}
	for key := range s.derived {
		union.Add(key)
	}
	return union
}

func (s *snapshot) result(key string) Result {
	return Result{
		ID:             key,
		IndexPresent:   s.indexed.Has(key),
		ShardPresent:   s.shards.Has(key),
		DerivedPresent: s.derived.Has(key),
	}
}
