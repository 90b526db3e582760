package server

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/wavedial/wavedial/internal/model"
	"github.com/wavedial/wavedial/internal/radiobrowser"
	"github.com/wavedial/wavedial/internal/store"
)

// Query defaults
const (
	DefaultStationsLimit = 50
	DefaultSearchLimit   = 20
	DefaultByRegionLimit = 30
	DefaultFavoritesCap  = 100
	DefaultUser          = "demo_user"
)

// Server wires the REST API over the station directory and favorites store
type Server struct {
	echo      *echo.Echo
	directory radiobrowser.Directory
	store     store.Store
}

// New assembles the echo application with logging, recovery, and permissive
// CORS for browser clients
func New(directory radiobrowser.Directory, favorites store.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:      e,
		directory: directory,
		store:     favorites,
	}

	e.GET("/", s.handleRoot)

	api := e.Group("/api")
	api.GET("/stations", s.handleStations)
	api.GET("/stations/by-region/:region", s.handleStationsByRegion)
	api.GET("/search", s.handleSearch)
	api.GET("/countries", s.handleCountries)
	api.GET("/favorites", s.handleListFavorites)
	api.POST("/favorites", s.handleAddFavorite)
	api.DELETE("/favorites/:station_uuid", s.handleRemoveFavorite)

	return s
}

// Start begins serving on addr and blocks until the server stops
func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) handleRoot(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "WaveDial worldwide radio API - American & African stations",
	})
}

func (s *Server) handleStations(c echo.Context) error {
	region := model.ParseRegion(c.QueryParam("region"))
	limit := queryLimit(c, DefaultStationsLimit)

	return s.respondStations(c, region, limit, c.QueryParam("search"))
}

func (s *Server) handleStationsByRegion(c echo.Context) error {
	region := model.ParseRegion(c.Param("region"))
	limit := queryLimit(c, DefaultByRegionLimit)

	return s.respondStations(c, region, limit, "")
}

func (s *Server) handleSearch(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing search query"})
	}

	region := model.ParseRegion(c.QueryParam("region"))
	limit := queryLimit(c, DefaultSearchLimit)

	return s.respondStations(c, region, limit, q)
}

func (s *Server) respondStations(c echo.Context, region model.Region, limit int, search string) error {
	stations, err := s.directory.FetchStations(c.Request().Context(), region, limit, search)
	if err != nil {
		log.Printf("Failed to fetch stations: %v", err)
		return c.JSON(http.StatusBadGateway, echo.Map{"message": "station directory unavailable"})
	}
	return c.JSON(http.StatusOK, stations)
}

func (s *Server) handleCountries(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"american": model.RegionAmerican.Countries(),
		"african":  model.RegionAfrican.Countries(),
	})
}

func (s *Server) handleListFavorites(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = DefaultUser
	}

	favorites, err := s.store.ListFavorites(c.Request().Context(), userID, DefaultFavoritesCap)
	if err != nil {
		log.Printf("Failed to list favorites: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to load favorites"})
	}
	return c.JSON(http.StatusOK, favorites)
}

func (s *Server) handleAddFavorite(c echo.Context) error {
	favorite := &model.Favorite{}
	if err := c.Bind(favorite); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid favorite payload"})
	}
	if favorite.StationUUID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing station_uuid"})
	}
	if favorite.UserID == "" {
		favorite.UserID = DefaultUser
	}
	favorite.AddedAt = time.Now().UTC()

	created, err := s.store.AddFavorite(c.Request().Context(), favorite)
	if err != nil {
		log.Printf("Failed to add favorite: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to save favorite"})
	}

	if !created {
		return c.JSON(http.StatusOK, echo.Map{
			"message":        "Station already in favorites",
			"already_exists": true,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":        "Station added to favorites",
		"id":             favorite.ID,
		"already_exists": false,
	})
}

func (s *Server) handleRemoveFavorite(c echo.Context) error {
	stationUUID := c.Param("station_uuid")
	userID := c.QueryParam("user_id")
	if userID == "" {
		userID = DefaultUser
	}

	removed, err := s.store.RemoveFavorite(c.Request().Context(), userID, stationUUID)
	if err != nil {
		log.Printf("Failed to remove favorite: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "failed to remove favorite"})
	}
	if !removed {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "favorite not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Station removed from favorites"})
}

// queryLimit parses the limit query parameter, falling back when absent or
// unusable
func queryLimit(c echo.Context, fallback int) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return fallback
	}
	return limit
}
