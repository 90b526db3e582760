package store

// Package store persists user favorites for the backend service. Rows live in
// a single favorites table keyed by (user, station); SQLite and PostgreSQL
// backends share one sqlx implementation and are chosen by database URL.
