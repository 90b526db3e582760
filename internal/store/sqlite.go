package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultSQLitePath is used when no database URL is configured
const DefaultSQLitePath = "wavedial.db"

const sqliteSchema = `
create table if not exists favorites (
	id text primary key,
	user_id text not null,
	station_uuid text not null,
	station_name text,
	country text,
	added_at timestamp,
	unique(user_id, station_uuid)
);`

// NewSQLiteStore opens a SQLite-backed favorites store, creating the schema
// when missing
func NewSQLiteStore(path string) (Store, error) {
	if path == "" {
		path = DefaultSQLitePath
	}

	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite has a single writer, and a :memory: database lives per
	// connection, so the pool stays at one.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create favorites table: %w", err)
	}
	return &sqlStore{db: db}, nil
}
