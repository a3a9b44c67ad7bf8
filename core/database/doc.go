// Package database opens the SQL database used by the export feature and
// inspects table schemas.
//
// Connect accepts MySQL (the production target) and SQLite (local exports and
// tests). GetTableColumns returns a dialect-independent column listing so the
// exporter can verify an existing table before writing into it.
//
//	db, err := database.Connect(cfg.Database)
//	columns, err := database.GetTableColumns(db, "pokemon_search")
package database
