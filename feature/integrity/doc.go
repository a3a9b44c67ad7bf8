// Package integrity validates a dataset as a whole.
//
// Loading a collection only proves the documents it touches parse; these
// checks look across collections.
//
// # Checks Provided
//
//   - Structure: every flat collection file and index document exists.
//   - Indices: each index lists exactly the shards present (see core/reconcile).
//     For pokemon, every id and form id of the shards must be indexed too.
//   - Uniqueness: ids are unique slugs in every collection; game name slugs are unique.
//   - References: pokemon, pokedex entries and games only reference records that exist.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check.
//   - GET /integrity/indices : Runs index check (supports ?fix=true).
//   - GET /integrity/uniqueness : Runs uniqueness check.
//   - GET /integrity/references : Runs reference check.
package integrity
