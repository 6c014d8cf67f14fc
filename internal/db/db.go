package db

import (
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
)

// Connect opens the SQLite database at dbPath and returns the connection
// pool.
func Connect(dbPath string) (*sqlx.DB, error) {
	pool, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	return pool, nil
}

// Initialize verifies the schema, creating the cars and users tables if they
// do not exist. AUTOINCREMENT on cars keeps ids monotonic across deletes.
func Initialize(pool *sqlx.DB) error {
	if _, err := pool.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	carSchema := `
	CREATE TABLE IF NOT EXISTS cars (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		brand TEXT NOT NULL,
		model TEXT NOT NULL,
		year INTEGER NOT NULL,
		price INTEGER NOT NULL,
		color TEXT NOT NULL
	);`

	if _, err := pool.Exec(carSchema); err != nil {
		return fmt.Errorf("failed to create cars table: %w", err)
	}

	userSchema := `
	CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		hashed_password TEXT NOT NULL,
		birthday TEXT NOT NULL DEFAULT ''
	);`

	if _, err := pool.Exec(userSchema); err != nil {
		return fmt.Errorf("failed to create users table: %w", err)
	}

	return nil
}
