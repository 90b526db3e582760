package model

import "time"

// Favorite represents a station saved to a user's favorites list
type Favorite struct {
	ID          string    `json:"id,omitempty" db:"id"` // server-assigned row id
	UserID      string    `json:"user_id" db:"user_id"`
	StationUUID string    `json:"station_uuid" db:"station_uuid"`
	StationName string    `json:"station_name" db:"station_name"` // denormalized for display without a directory lookup
	Country     string    `json:"country" db:"country"`
	AddedAt     time.Time `json:"added_at,omitzero" db:"added_at"`
}

// NewFavorite creates a favorite pairing the given user with a station
func NewFavorite(userID string, station *Station) *Favorite {
	return &Favorite{
		UserID:      userID,
		StationUUID: station.StationUUID,
		StationName: station.Name,
		Country:     station.Country,
	}
}
