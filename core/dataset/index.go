package dataset

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Index names of the sharded collections.
const (
	IndexPokemon   = "pokemon"
	IndexGames     = "games"
	IndexPokedexes = "pokedexes"
)

// IndexDir is the directory holding index documents.
const IndexDir = "indices"

// MissingPolicy decides what a join does with a key whose shard is absent.
type MissingPolicy int

const (
	// MissingFatal aborts the join. Used for primary content collections.
	MissingFatal MissingPolicy = iota
	// MissingSkip logs a warning and continues. Used for optional legacy data.
	MissingSkip
)

// Shard is one joined document with the index key it was loaded for.
type Shard[T any] struct {
	Key string
	Doc T
}

// IndexName returns the document name of the named index.
func IndexName(name string) string {
	return DocumentName(IndexDir, name)
}

// ReadIndex loads the ordered key list of the named index.
func ReadIndex(src Source, name string) ([]string, error) {
	return decodeDocument[[]string](src, "index", name, IndexName(name))
}

// WriteIndex persists keys as the named index document (2-space indented JSON array).
func WriteIndex(src Source, name string, keys []string) error {
	if keys == nil {
		keys = []string{}
	}
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode index %s: %w", name, err)
	}
	return src.WriteFile(IndexName(name), data)
}

// JoinShards loads <dir>/<key>.json for every key, in key order.
// kind names the record type in errors and log entries (e.g. "pokemon").
func JoinShards[T any](src Source, kind, dir string, keys []string, policy MissingPolicy, logger *zap.Logger) ([]Shard[T], error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	shards := make([]Shard[T], 0, len(keys))
	for _, key := range keys {
		doc, err := decodeDocument[T](src, kind, key, DocumentName(dir, key))
		if err != nil {
			if policy == MissingSkip && IsNotFound(err) {
				logger.Warn("Skipping missing shard",
					zap.String("kind", kind),
					zap.String("key", key),
					zap.String("path", src.Location(DocumentName(dir, key))),
				)
				continue
			}
			return nil, err
		}
		shards = append(shards, Shard[T]{Key: key, Doc: doc})
	}
	return shards, nil
}

// JoinFromIndex loads every shard listed in keys and returns the documents in order.
func JoinFromIndex[T any](src Source, kind, dir string, keys []string, policy MissingPolicy, logger *zap.Logger) ([]T, error) {
	shards, err := JoinShards[T](src, kind, dir, keys, policy, logger)
	if err != nil {
		return nil, err
	}
	docs := make([]T, len(shards))
	for i, s := range shards {
		docs[i] = s.Doc
	}
	return docs, nil
}
