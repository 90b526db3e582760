package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wavedial/wavedial/internal/model"
)

// DefaultRequestTimeout bounds each backend request, response body included.
// A stalled backend must not wedge the fetch goroutines behind it.
const DefaultRequestTimeout = 15 * time.Second

// Client talks to the WaveDial directory and favorites API
type Client struct {
	baseURL    string
	userID     string
	httpClient *http.Client
}

// NewClient creates an API client for the given backend base URL and user
func NewClient(baseURL, userID string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userID:     userID,
		httpClient: &http.Client{Timeout: DefaultRequestTimeout},
	}
}

// SetTimeout sets the per-request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// UserID returns the user identity the client acts for
func (c *Client) UserID() string {
	return c.userID
}

// GetStations fetches the station list for a region
func (c *Client) GetStations(region model.Region, limit int) ([]model.Station, error) {
	params := url.Values{}
	params.Set("region", region.String())
	params.Set("limit", strconv.Itoa(limit))

	return c.fetchStations("/api/stations", params)
}

// SearchStations fetches stations matching a free-text query within a region
func (c *Client) SearchStations(query string, region model.Region, limit int) ([]model.Station, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("region", region.String())
	params.Set("limit", strconv.Itoa(limit))

	return c.fetchStations("/api/search", params)
}

// fetchStations performs a station list request and decodes the response array
func (c *Client) fetchStations(path string, params url.Values) ([]model.Station, error) {
	resp, err := c.httpClient.Get(c.baseURL + path + "?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetch stations: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch stations: unexpected status %d", resp.StatusCode)
	}

	var stations []model.Station
	if err := json.NewDecoder(resp.Body).Decode(&stations); err != nil {
		return nil, fmt.Errorf("decode stations: %w", err)
	}

	return stations, nil
}

// GetFavorites fetches the configured user's favorites
func (c *Client) GetFavorites() ([]model.Favorite, error) {
	params := url.Values{}
	params.Set("user_id", c.userID)

	resp, err := c.httpClient.Get(c.baseURL + "/api/favorites?" + params.Encode())
	if err != nil {
		return nil, fmt.Errorf("fetch favorites: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch favorites: unexpected status %d", resp.StatusCode)
	}

	var favorites []model.Favorite
	if err := json.NewDecoder(resp.Body).Decode(&favorites); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}

	return favorites, nil
}

// AddFavorite saves a station to the user's favorites and reports whether it
// already existed on the server
func (c *Client) AddFavorite(station *model.Station) (bool, error) {
	body, err := json.Marshal(model.NewFavorite(c.userID, station))
	if err != nil {
		return false, fmt.Errorf("encode favorite: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+"/api/favorites", "application/json", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("add favorite: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("add favorite: unexpected status %d", resp.StatusCode)
	}

	var result struct {
		Message       string `json:"message"`
		AlreadyExists bool   `json:"already_exists"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("decode favorite response: %w", err)
	}

	return result.AlreadyExists, nil
}

// RemoveFavorite deletes a station from the user's favorites by station id
func (c *Client) RemoveFavorite(stationUUID string) error {
	params := url.Values{}
	params.Set("user_id", c.userID)

	req, err := http.NewRequest(http.MethodDelete,
		c.baseURL+"/api/favorites/"+url.PathEscape(stationUUID)+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("remove favorite: unexpected status %d", resp.StatusCode)
	}

	return nil
}
