// Package ledger is the SQLite-backed transaction store. The import
// pipeline only reads (duplicate checks) and appends through it; existing
// rows are never updated in place by the importer.
package ledger

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite"
)

const schemaVersion = 1

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS schema_meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS accounts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		type TEXT NOT NULL,
		currency TEXT NOT NULL DEFAULT 'CAD',
		opening_balance_cents INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);`,
	`CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		kind TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		account_id INTEGER NOT NULL,
		category_id INTEGER,
		amount_cents INTEGER NOT NULL,
		description TEXT,
		occurred_on TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		FOREIGN KEY (account_id) REFERENCES accounts(id) ON DELETE CASCADE,
		FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE SET NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_account_date
		ON transactions(account_id, occurred_on);`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_category
		ON transactions(category_id);`,
	`CREATE TABLE IF NOT EXISTS budgets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		category_id INTEGER NOT NULL,
		month TEXT NOT NULL,
		limit_cents INTEGER NOT NULL,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		UNIQUE(category_id, month),
		FOREIGN KEY (category_id) REFERENCES categories(id) ON DELETE CASCADE
	);`,
}

// Store provides access to the ledger database.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Open opens (creating if needed) the ledger database at path, applies
// schema migrations, and seeds the default categories. Safe to call on an
// existing database; every step is idempotent.
func Open(path string, logger *log.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	for _, stmt := range migrations {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("applying migration: %w", err)
		}
	}

	var version string
	err := s.db.QueryRow(`SELECT value FROM schema_meta WHERE key = 'schema_version';`).Scan(&version)
	if err == sql.ErrNoRows {
		if _, err := s.db.Exec(
			`INSERT INTO schema_meta(key, value) VALUES('schema_version', ?);`,
			fmt.Sprintf("%d", schemaVersion),
		); err != nil {
			return fmt.Errorf("recording schema version: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	if err := s.seedCategories(); err != nil {
		return err
	}

	s.logger.Debug("ledger schema ready", "version", schemaVersion)
	return nil
}
