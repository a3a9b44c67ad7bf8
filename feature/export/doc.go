// Package export materialises translated pokemon into a SQL table.
//
// Each row is one pokemon in one language, keyed by (id, lang), carrying the
// resolved names and the searchable text so other services can query the
// dataset without loading it. Rows are upserted, so re-running an export
// refreshes the table in place.
//
// The table is a copy taken on demand by the export command. The dataset
// documents stay the only source of truth: nothing in the service reads the
// table back, and rows of pokemon removed from the dataset are left in place
// until the operator drops them.
//
// VerifySchema compares an existing table against the PokemonRow gorm tags
// before an export writes into it.
package export
