package db

import "github.com/jmoiron/sqlx"

// EnsureSchema creates the tables the service needs. Safe to run on every start.
func EnsureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	tel TEXT NOT NULL,
	password TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'member' CHECK (role IN ('member', 'admin')),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS events (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	date TEXT NOT NULL,
	venue TEXT NOT NULL,
	total_tickets INTEGER NOT NULL,
	available_tickets INTEGER NOT NULL,
	price DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS reservations (
	id SERIAL PRIMARY KEY,
	code TEXT NOT NULL UNIQUE,
	user_id INTEGER NOT NULL,
	event_id INTEGER NOT NULL,
	ticket_amount INTEGER NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`

	_, err := db.Exec(schema)
	return err
}
