// Package cache provides the time-bounded in-process cache used by the dataset loaders.
//
// A Cache maps string keys to values that expire a fixed TTL after they were produced.
// Expensive loaders (index joins, derived aggregates) are wrapped with Cached so that
// repeated reads within a short window are served from memory, while external edits to
// the dataset become visible once the entry expires.
//
// # Concurrency
//
// The entry map itself is guarded by a mutex, but producers are NOT de-duplicated.
// Two concurrent misses for the same key may both run their producer; both results
// are stored and the later write wins. This is only safe because every producer in
// this repository is a pure, idempotent read of immutable dataset files. A producer
// with side effects would need a per-key single-flight lock.
//
// # Usage
//
//	c := cache.New(10 * time.Second)
//	games, err := cache.Cached(c, "allGames", func() ([]catalog.Game, error) {
//	    return loadGames()
//	})
package cache
