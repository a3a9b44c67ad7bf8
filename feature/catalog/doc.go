// Package catalog is the read facade over the dataset.
//
// Flat collections (items, abilities, moves, ...) are backed by one document
// each and parsed once. Sharded collections (pokemon, games, pokedexes) are
// joined from their index document and kept in the shared cache for its TTL.
// Legacy box presets are joined per game set; a game set without a preset
// document is skipped with a warning, whereas a missing pokemon, game or
// pokedex shard fails the load.
//
// RegeneratePokemonIndex is the only operation that writes to the dataset.
//
// # Routes
//
//	GET  /catalog
//	GET  /catalog/gamesets
//	GET  /catalog/boxpresets/:variant
//	POST /catalog/indices/pokemon
//	GET  /catalog/:collection
//	GET  /catalog/:collection/:id
package catalog
