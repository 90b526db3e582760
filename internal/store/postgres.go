package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const postgresSchema = `
create table if not exists favorites (
	id text primary key,
	user_id text not null,
	station_uuid text not null,
	station_name text,
	country text,
	added_at timestamptz,
	unique(user_id, station_uuid)
);`

// NewPostgresStore connects to a PostgreSQL-backed favorites store, creating
// the schema when missing
func NewPostgresStore(dbURL string) (Store, error) {
	db, err := sqlx.Open("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres database: %w", err)
	}

	if _, err := db.Exec(postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create favorites table: %w", err)
	}
	return &sqlStore{db: db}, nil
}
