package sqlengine

import (
	"context"
	"strings"
)

const operationMigrate = "migrate"

// schemaStatements create the catalog tables. Placeholders are replaced per dialect.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS {p}auth_user (
	id {uuid} PRIMARY KEY,
	username VARCHAR(150) NOT NULL UNIQUE,
	password_hash VARCHAR(128) NOT NULL,
	first_name VARCHAR(150) NOT NULL DEFAULT '',
	last_name VARCHAR(150) NOT NULL DEFAULT '',
	is_superuser BOOLEAN NOT NULL DEFAULT {false}
)`,
	`CREATE TABLE IF NOT EXISTS {p}auth_user_permission (
	user_id {uuid} NOT NULL REFERENCES {p}auth_user (id) ON DELETE CASCADE,
	codename VARCHAR(100) NOT NULL,
	PRIMARY KEY (user_id, codename)
)`,
	`CREATE TABLE IF NOT EXISTS {p}catalog_genre (
	id {uuid} PRIMARY KEY,
	name VARCHAR(200) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS {p}catalog_author (
	id {uuid} PRIMARY KEY,
	first_name VARCHAR(100) NOT NULL,
	last_name VARCHAR(100) NOT NULL,
	date_of_birth DATE NULL,
	date_of_death DATE NULL
)`,
	`CREATE TABLE IF NOT EXISTS {p}catalog_book (
	id {uuid} PRIMARY KEY,
	title VARCHAR(200) NOT NULL,
	author_id {uuid} NULL REFERENCES {p}catalog_author (id) ON DELETE SET NULL,
	summary VARCHAR(1000) NOT NULL,
	isbn VARCHAR(13) NOT NULL
)`,
	`CREATE TABLE IF NOT EXISTS {p}catalog_book_genre (
	book_id {uuid} NOT NULL REFERENCES {p}catalog_book (id) ON DELETE CASCADE,
	genre_id {uuid} NOT NULL REFERENCES {p}catalog_genre (id) ON DELETE CASCADE,
	PRIMARY KEY (book_id, genre_id)
)`,
	`CREATE TABLE IF NOT EXISTS {p}catalog_bookinstance (
	id {uuid} PRIMARY KEY,
	book_id {uuid} NULL REFERENCES {p}catalog_book (id) ON DELETE SET NULL,
	imprint VARCHAR(200) NOT NULL,
	language VARCHAR(200) NOT NULL DEFAULT 'English',
	due_back DATE NULL,
	borrower_id {uuid} NULL REFERENCES {p}auth_user (id) ON DELETE SET NULL,
	status VARCHAR(1) NOT NULL DEFAULT 'm'
)`,
	`CREATE INDEX IF NOT EXISTS {p}catalog_bookinstance_due_back_idx ON {p}catalog_bookinstance (due_back)`,
	`CREATE INDEX IF NOT EXISTS {p}catalog_bookinstance_borrower_idx ON {p}catalog_bookinstance (borrower_id, status)`,
	`CREATE TABLE IF NOT EXISTS {p}catalog_session (
	id {uuid} PRIMARY KEY,
	user_id {uuid} NULL REFERENCES {p}auth_user (id) ON DELETE CASCADE,
	num_visits INTEGER NOT NULL DEFAULT 0,
	expires_at BIGINT NOT NULL
)`,
}

// schemaReplacer returns the placeholder replacements for the configured dialect.
func (s *Store) schemaReplacer() *strings.Replacer {
	if s.dialectName == DialectSQLite {
		return strings.NewReplacer("{p}", s.tablePrefix, "{uuid}", "TEXT", "{false}", "0")
	}

	return strings.NewReplacer("{p}", s.tablePrefix, "{uuid}", "UUID", "{false}", "FALSE")
}

// Migrate creates all catalog tables and indexes that do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	return s.observe(ctx, operationMigrate, func(ctx context.Context) error {
		replacer := s.schemaReplacer()

		for _, statement := range schemaStatements {
			if _, err := s.execRaw(ctx, s.db, replacer.Replace(statement), logActionMigrate); err != nil {
				return err
			}
		}

		return nil
	})
}
