package radiobrowser

import (
	"context"

	"github.com/wavedial/wavedial/internal/model"
)

// Directory defines the interface for upstream station lookups
type Directory interface {
	// FetchStations returns up to limit stations for the region, most clicked
	// first. A non-empty search narrows results by station name.
	FetchStations(ctx context.Context, region model.Region, limit int, search string) ([]model.Station, error)
}
