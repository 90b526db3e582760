package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/wavedial/wavedial/internal/model"
)

// Limits
const (
	DefaultListLimit = 100
)

// Store defines favorite persistence operations
type Store interface {
	// ListFavorites returns a user's favorites, newest first, capped at limit.
	ListFavorites(ctx context.Context, userID string, limit int) ([]model.Favorite, error)
	// AddFavorite stores a favorite and reports whether a row was created.
	// Adding an existing (user, station) pair is a no-op returning false.
	AddFavorite(ctx context.Context, favorite *model.Favorite) (bool, error)
	// RemoveFavorite deletes a favorite and reports whether a row matched.
	RemoveFavorite(ctx context.Context, userID, stationUUID string) (bool, error)
	Close() error
}

// Open selects a store backend from the database URL. postgres:// URLs
// connect via lib/pq, anything else is treated as a SQLite path (an optional
// sqlite:// prefix is stripped, ":memory:" stays in memory).
func Open(dbURL string) (Store, error) {
	switch {
	case strings.HasPrefix(dbURL, "postgres://"), strings.HasPrefix(dbURL, "postgresql://"):
		return NewPostgresStore(dbURL)
	default:
		return NewSQLiteStore(strings.TrimPrefix(dbURL, "sqlite://"))
	}
}

// sqlStore implements Store on top of any sqlx-supported database. Queries
// are written with ? placeholders and rebound per driver.
type sqlStore struct {
	db *sqlx.DB
}

func (s *sqlStore) ListFavorites(ctx context.Context, userID string, limit int) ([]model.Favorite, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := s.db.Rebind(`select id, user_id, station_uuid, station_name, country, added_at
		from favorites where user_id=? order by added_at desc limit ?`)

	favorites := make([]model.Favorite, 0)
	if err := s.db.SelectContext(ctx, &favorites, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	return favorites, nil
}

func (s *sqlStore) AddFavorite(ctx context.Context, favorite *model.Favorite) (bool, error) {
	if favorite.ID == "" {
		favorite.ID = newFavoriteID()
	}
	if favorite.AddedAt.IsZero() {
		favorite.AddedAt = time.Now().UTC()
	}

	query := `insert into favorites (id, user_id, station_uuid, station_name, country, added_at)
		values (:id, :user_id, :station_uuid, :station_name, :country, :added_at)
		on conflict(user_id, station_uuid) do nothing`

	result, err := s.db.NamedExecContext(ctx, query, favorite)
	if err != nil {
		return false, fmt.Errorf("failed to add favorite: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

func (s *sqlStore) RemoveFavorite(ctx context.Context, userID, stationUUID string) (bool, error) {
	query := s.db.Rebind(`delete from favorites where user_id=? and station_uuid=?`)

	result, err := s.db.ExecContext(ctx, query, userID, stationUUID)
	if err != nil {
		return false, fmt.Errorf("failed to remove favorite: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

func (s *sqlStore) Close() error {
	return s.db.Close()
}

// newFavoriteID returns a time-sortable unique row id
func newFavoriteID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("fav_%d", time.Now().UnixNano())
	}
	return id.String()
}
