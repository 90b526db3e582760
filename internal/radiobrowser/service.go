package radiobrowser

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/wavedial/wavedial/internal/model"
)

// Timeout constants
const (
	DefaultFetchTimeout = 30 * time.Second
)

// Upstream endpoint
const (
	DefaultBaseURL = "https://de1.api.radio-browser.info"
	searchPath     = "/json/stations/search"
)

// Aggregation limits
const (
	MaxCountriesPerFetch  = 6
	MinStationsPerCountry = 5
	TopStationsPerCountry = 10
)

// station mirrors one record of the upstream search response. The click count
// drives result ordering and is dropped from the directory payload.
type station struct {
	StationUUID string `json:"stationuuid"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	URLResolved string `json:"url_resolved"`
	Country     string `json:"country"`
	Tags        string `json:"tags"`
	Favicon     string `json:"favicon"`
	Bitrate     int    `json:"bitrate"`
	Codec       string `json:"codec"`
	ClickCount  int    `json:"clickcount"`
}

// Service aggregates live stations from the community Radio-Browser directory
type Service struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewService creates an aggregation service for the given upstream base URL
func NewService(baseURL string) *Service {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Service{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    DefaultFetchTimeout,
		httpClient: &http.Client{},
	}
}

// SetTimeout sets the timeout for one whole aggregation pass
func (s *Service) SetTimeout(timeout time.Duration) {
	s.timeout = timeout
}

// FetchStations returns up to limit stations for the region, most clicked
// first. A non-empty search narrows results by station name.
func (s *Service) FetchStations(ctx context.Context, region model.Region, limit int, search string) ([]model.Station, error) {
	if limit <= 0 {
		return []model.Station{}, nil
	}

	countries := region.Countries()
	perCountry := perCountryLimit(limit, len(countries))
	if len(countries) > MaxCountriesPerFetch {
		// Poll only the leading countries to keep one pass bounded.
		countries = countries[:MaxCountriesPerFetch]
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	collected := make([]station, 0, limit)
	failed := 0
	var lastErr error
	for _, country := range countries {
		records, err := s.fetchCountry(ctx, country, perCountry, search)
		if err != nil {
			log.Printf("Failed to fetch stations for %s: %v", country, err)
			failed++
			lastErr = err
			continue
		}
		collected = append(collected, playable(records)...)
	}
	if failed == len(countries) && lastErr != nil {
		return nil, fmt.Errorf("all country fetches failed: %w", lastErr)
	}

	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].ClickCount > collected[j].ClickCount
	})
	if len(collected) > limit {
		collected = collected[:limit]
	}

	stations := make([]model.Station, 0, len(collected))
	for _, rec := range collected {
		stations = append(stations, model.Station{
			StationUUID: rec.StationUUID,
			Name:        rec.Name,
			URL:         rec.URL,
			URLResolved: rec.URLResolved,
			Country:     rec.Country,
			Tags:        rec.Tags,
			Favicon:     rec.Favicon,
			Bitrate:     rec.Bitrate,
			Codec:       rec.Codec,
		})
	}
	return stations, nil
}

// fetchCountry queries the upstream directory for one country
func (s *Service) fetchCountry(ctx context.Context, country string, limit int, search string) ([]station, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+searchPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("country", country)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("order", "clickcount")
	q.Set("reverse", "true")
	if search != "" {
		q.Set("name", search)
	}
	req.URL.RawQuery = q.Encode()

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to query directory: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var records []station
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return records, nil
}

// perCountryLimit spreads the requested limit across the whole region, with a
// floor so small requests still sample every polled country.
func perCountryLimit(limit, countryCount int) int {
	if countryCount == 0 {
		return MinStationsPerCountry
	}
	perCountry := limit / countryCount
	if perCountry < MinStationsPerCountry {
		perCountry = MinStationsPerCountry
	}
	return perCountry
}

// playable drops records without a resolved stream URL or a name and keeps
// the leading entries of one country response.
func playable(records []station) []station {
	valid := make([]station, 0, len(records))
	for _, rec := range records {
		if rec.URLResolved == "" || rec.Name == "" {
			continue
		}
		valid = append(valid, rec)
		if len(valid) == TopStationsPerCountry {
			break
		}
	}
	return valid
}
