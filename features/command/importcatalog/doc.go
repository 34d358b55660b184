// Package importcatalog implements the Import Catalog use case of the admin CLI.
//
// A JSON document lists genres, authors, books and book instances. Records are imported
// in that order so later records can reference earlier ones by natural key:
// books name their author by first and last name and their genres by name,
// instances name their book by ISBN.
//
// Records that already exist are skipped, so importing the same document twice is an idempotent no-op.
package importcatalog
