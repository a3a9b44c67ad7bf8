// Package dataset provides file-backed access to the PokéPC JSON dataset.
//
// The dataset is a tree of JSON documents addressed by slash-separated names relative
// to a root (a local directory or an object storage prefix):
//
//	items.json, abilities.json, ...        flat collections (one array per file)
//	indices/<name>.json                    index documents (array of shard keys)
//	pokemon/<id>.json, games/<id>.json     shards (one record per file)
//	boxpresets/<variant>/<gameSetId>.json  legacy preset shards
//
// # Components
//
//   - Source: where documents live (DirSource, BucketSource).
//   - Collection: a flat, keyed collection parsed once from a single array document.
//   - ReadIndex / JoinFromIndex: the index-driven multi-file join for sharded collections.
//
// # Failure model
//
// A missing or malformed document is a configuration error: the dataset is assumed to be
// a complete, consistent snapshot, so operations fail with a *DocumentError naming the
// key and the resolved location instead of returning partial data. The only exception
// is a join with the MissingSkip policy, used for optional legacy data, which logs a
// warning and continues.
package dataset
