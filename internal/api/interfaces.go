package api

import (
	"github.com/wavedial/wavedial/internal/model"
)

// StationService defines the directory and favorites operations the UI consumes.
type StationService interface {
	GetStations(region model.Region, limit int) ([]model.Station, error)
	SearchStations(query string, region model.Region, limit int) ([]model.Station, error)
	GetFavorites() ([]model.Favorite, error)

	// AddFavorite reports whether the station was already a favorite
	AddFavorite(station *model.Station) (bool, error)

	// RemoveFavorite deletes the favorite keyed by station id
	RemoveFavorite(stationUUID string) error
}
