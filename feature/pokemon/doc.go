// Package pokemon builds language-specific, search-ready projections of
// pokemon records and filters them.
//
// A raw record from the catalog is turned into a Translated projection by
// Translate. The projection carries the resolved text of one language, the
// species generation derived from the national dex number, the formatted dex
// number and a lower-cased searchable text blob. Re-translating a projection
// only swaps its text fields.
//
// Search applies a Filter to a list of projections. Queries shorter than
// MinQueryLength are not run: the input is returned unfiltered with
// Meta.Skipped set.
package pokemon
