package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		contact_no TEXT NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS lost_items (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		unique_id TEXT NOT NULL DEFAULT '',
		date_lost TEXT NOT NULL,
		time_lost TEXT NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'Bag',
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		owner_user_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		found_by_email TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS found_items (
		id TEXT NOT NULL PRIMARY KEY,
		name TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		brand TEXT NOT NULL DEFAULT '',
		unique_id TEXT NOT NULL DEFAULT '',
		date_found TEXT NOT NULL,
		image_url TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT 'Bag',
		phone TEXT NOT NULL,
		email TEXT NOT NULL,
		owner_user_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		claimed_by_email TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS events (
		id TEXT NOT NULL PRIMARY KEY,
		type TEXT NOT NULL,
		level TEXT NOT NULL,
		message TEXT NOT NULL,
		user_id TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_lost_items_owner ON lost_items(owner_user_id);
	CREATE INDEX IF NOT EXISTS idx_found_items_owner ON found_items(owner_user_id);
	CREATE INDEX IF NOT EXISTS idx_lost_items_status ON lost_items(status);
	CREATE INDEX IF NOT EXISTS idx_found_items_status ON found_items(status);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
