package ui

import (
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/wavedial/wavedial/internal/model"
	"github.com/wavedial/wavedial/internal/player"
)

// fakeStationService is a scripted backend for UI tests. It records every
// directory call so tests can assert which endpoint was hit.
type fakeStationService struct {
	stations  []model.Station
	favorites []model.Favorite

	stationsErr  error
	favoritesErr error

	getCalls       int
	searchCalls    int
	favoritesCalls int

	lastQuery  string
	lastRegion model.Region
	lastLimit  int

	// favoritesFetched, when set, signals each GetFavorites call so a test
	// can wait for a background re-fetch to land
	favoritesFetched chan struct{}
}

func (f *fakeStationService) GetStations(region model.Region, limit int) ([]model.Station, error) {
	f.getCalls++
	f.lastRegion = region
	f.lastLimit = limit
	if f.stationsErr != nil {
		return nil, f.stationsErr
	}
	return f.stations, nil
}

func (f *fakeStationService) SearchStations(query string, region model.Region, limit int) ([]model.Station, error) {
	f.searchCalls++
	f.lastQuery = query
	f.lastRegion = region
	f.lastLimit = limit
	if f.stationsErr != nil {
		return nil, f.stationsErr
	}
	return f.stations, nil
}

func (f *fakeStationService) GetFavorites() ([]model.Favorite, error) {
	f.favoritesCalls++
	if f.favoritesFetched != nil {
		f.favoritesFetched <- struct{}{}
	}
	if f.favoritesErr != nil {
		return nil, f.favoritesErr
	}
	return f.favorites, nil
}

func (f *fakeStationService) AddFavorite(station *model.Station) (bool, error) {
	return false, nil
}

func (f *fakeStationService) RemoveFavorite(stationUUID string) error {
	return nil
}

func testStations() []model.Station {
	return []model.Station{
		{StationUUID: "us-1", Name: "Jazz24", URLResolved: "http://jazz24.example/live.mp3", Country: "United States", Tags: "jazz", Bitrate: 128, Codec: "MP3"},
		{StationUUID: "ke-1", Name: "Ghetto Radio", URLResolved: "http://ghetto.example/stream", Country: "Kenya", Tags: "urban", Bitrate: 64, Codec: "AAC"},
		{StationUUID: "ng-1", Name: "Lagos Talks", URLResolved: "http://lagos.example/stream", Country: "Nigeria", Tags: "talk"},
	}
}

// newTestUI builds a RootUI against a scripted backend and a controller with
// no audio output. Start is not called, so nothing is fetched until a test
// asks for it.
func newTestUI(t *testing.T, service *fakeStationService) *RootUI {
	t.Helper()

	testApp := test.NewApp()
	window := testApp.NewWindow("test")
	t.Cleanup(window.Close)

	return NewRootUI(window, testApp, service, player.NewController(nil))
}

func TestFilterStations(t *testing.T) {
	stations := testStations()

	tests := []struct {
		name          string
		favorites     map[string]bool
		favoritesOnly bool
		expectedIDs   []string
	}{
		{
			name:          "filter off keeps everything",
			favorites:     map[string]bool{"us-1": true},
			favoritesOnly: false,
			expectedIDs:   []string{"us-1", "ke-1", "ng-1"},
		},
		{
			name:          "filter narrows to membership",
			favorites:     map[string]bool{"us-1": true, "ng-1": true},
			favoritesOnly: true,
			expectedIDs:   []string{"us-1", "ng-1"},
		},
		{
			name:          "no favorites yields empty list",
			favorites:     map[string]bool{},
			favoritesOnly: true,
			expectedIDs:   []string{},
		},
		{
			name:          "favorites absent from the fetch are ignored",
			favorites:     map[string]bool{"zz-9": true},
			favoritesOnly: true,
			expectedIDs:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filterStations(stations, tt.favorites, tt.favoritesOnly)
			if len(result) != len(tt.expectedIDs) {
				t.Fatalf("expected %d stations, got %d", len(tt.expectedIDs), len(result))
			}
			for i, id := range tt.expectedIDs {
				if result[i].StationUUID != id {
					t.Errorf("expected %s at index %d, got %s", id, i, result[i].StationUUID)
				}
			}
		})
	}
}

func TestLoadStationsDispatch(t *testing.T) {
	service := &fakeStationService{stations: testStations()}

	// An empty query lists stations with the configured page size
	if _, err := loadStations(service, "", model.RegionAll, 50); err != nil {
		t.Fatalf("loadStations failed: %v", err)
	}
	if service.getCalls != 1 || service.searchCalls != 0 {
		t.Errorf("Expected a plain listing call, got %d listing / %d search", service.getCalls, service.searchCalls)
	}
	if service.lastRegion != model.RegionAll {
		t.Errorf("Expected region all, got %s", service.lastRegion)
	}
	if service.lastLimit != 50 {
		t.Errorf("Expected limit 50, got %d", service.lastLimit)
	}

	// A query routes to the search endpoint carrying the region along
	if _, err := loadStations(service, "jazz", model.RegionAmerican, 50); err != nil {
		t.Fatalf("loadStations failed: %v", err)
	}
	if service.searchCalls != 1 {
		t.Errorf("Expected a search call, got %d", service.searchCalls)
	}
	if service.lastQuery != "jazz" {
		t.Errorf("Expected query jazz, got %q", service.lastQuery)
	}
	if service.lastRegion != model.RegionAmerican {
		t.Errorf("Expected region american, got %s", service.lastRegion)
	}
	if service.lastLimit != SearchResultLimit {
		t.Errorf("Expected search limit %d, got %d", SearchResultLimit, service.lastLimit)
	}
}

func TestFavoritesOnlyToggleStaysLocal(t *testing.T) {
	service := &fakeStationService{}
	ui := newTestUI(t, service)

	ui.finishStations(testStations(), nil)
	ui.applyFavorites([]model.Favorite{
		{UserID: "demo_user", StationUUID: "ke-1", StationName: "Ghetto Radio"},
	})

	if len(ui.displayed) != 3 {
		t.Fatalf("Expected 3 displayed stations, got %d", len(ui.displayed))
	}

	ui.favoritesOnly.SetChecked(true)

	if service.getCalls != 0 || service.searchCalls != 0 {
		t.Errorf("Favorites toggle must not hit the backend, got %d listing / %d search calls", service.getCalls, service.searchCalls)
	}
	if len(ui.displayed) != 1 {
		t.Fatalf("Expected 1 displayed station, got %d", len(ui.displayed))
	}
	if ui.displayed[0].StationUUID != "ke-1" {
		t.Errorf("Expected ke-1 to remain, got %s", ui.displayed[0].StationUUID)
	}

	ui.favoritesOnly.SetChecked(false)

	if len(ui.displayed) != 3 {
		t.Errorf("Expected full list back, got %d stations", len(ui.displayed))
	}
}

func TestFinishStationsFailureEmptiesList(t *testing.T) {
	ui := newTestUI(t, &fakeStationService{})

	ui.finishStations(testStations(), nil)
	if len(ui.displayed) != 3 {
		t.Fatalf("Expected 3 displayed stations, got %d", len(ui.displayed))
	}

	ui.finishStations(nil, errors.New("backend unreachable"))

	if len(ui.displayed) != 0 {
		t.Errorf("Expected empty list after a failed fetch, got %d stations", len(ui.displayed))
	}
	if ui.notificationLabel.Text != "0 stations found" {
		t.Errorf("Expected empty result notice, got %q", ui.notificationLabel.Text)
	}
}

func TestStationCountNotice(t *testing.T) {
	ui := newTestUI(t, &fakeStationService{})

	ui.finishStations(testStations(), nil)

	if ui.notificationLabel.Text != "3 stations found" {
		t.Errorf("Expected station count notice, got %q", ui.notificationLabel.Text)
	}
}

func TestFavoriteToggleRefetchUsesCapturedClient(t *testing.T) {
	fetched := make(chan struct{}, 1)
	service := &fakeStationService{
		favoritesErr:     errors.New("backend restarting"),
		favoritesFetched: fetched,
	}
	ui := newTestUI(t, service)
	ui.finishStations(testStations(), nil)

	// Settings can swap the client while a toggle runs in the background;
	// the follow-up favorites re-fetch belongs to the client the toggle
	// started with
	replacement := &fakeStationService{}
	ui.onStationFavoriteToggle("us-1")
	ui.apiClient = replacement

	select {
	case <-fetched:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a favorites re-fetch after the toggle")
	}

	if service.favoritesCalls != 1 {
		t.Errorf("Expected the starting client to serve the re-fetch, got %d calls", service.favoritesCalls)
	}
	if replacement.favoritesCalls != 0 {
		t.Errorf("Expected the swapped-in client to stay idle, got %d calls", replacement.favoritesCalls)
	}
}

func TestApplyFavoritesReplacesMembership(t *testing.T) {
	ui := newTestUI(t, &fakeStationService{})
	ui.finishStations(testStations(), nil)

	ui.applyFavorites([]model.Favorite{
		{UserID: "demo_user", StationUUID: "us-1"},
		{UserID: "demo_user", StationUUID: "ke-1"},
	})
	if len(ui.favorites) != 2 {
		t.Fatalf("Expected 2 favorites, got %d", len(ui.favorites))
	}

	// A re-fetch replaces the set wholesale, stale entries do not linger
	ui.applyFavorites([]model.Favorite{
		{UserID: "demo_user", StationUUID: "ng-1"},
	})
	if len(ui.favorites) != 1 {
		t.Fatalf("Expected 1 favorite after replacement, got %d", len(ui.favorites))
	}
	if !ui.favorites["ng-1"] {
		t.Error("Expected ng-1 to be the remaining favorite")
	}
	if ui.favorites["us-1"] {
		t.Error("Expected us-1 to be dropped")
	}
}

func TestNowPlayingBarIdle(t *testing.T) {
	ui := newTestUI(t, &fakeStationService{})

	if ui.nowPlayingLabel.Text != "Nothing playing" {
		t.Errorf("Expected idle placeholder, got %q", ui.nowPlayingLabel.Text)
	}
	if !ui.playPauseBtn.Disabled() {
		t.Error("Expected play button to be disabled with nothing tuned")
	}
	if ui.statusIcon.Text != IconRadio {
		t.Errorf("Expected idle status icon, got %q", ui.statusIcon.Text)
	}
}

func TestVolumeChangeWithoutStation(t *testing.T) {
	ui := newTestUI(t, &fakeStationService{})

	ui.onVolumeChanged(35)

	if ui.controller.Volume() != 35 {
		t.Errorf("Expected controller volume 35, got %d", ui.controller.Volume())
	}
	if ui.volumeLabel.Text != "35%" {
		t.Errorf("Expected volume label 35%%, got %q", ui.volumeLabel.Text)
	}
}

func TestUpdateStationItemBindsRow(t *testing.T) {
	ui := newTestUI(t, &fakeStationService{})
	ui.finishStations(testStations(), nil)
	ui.applyFavorites([]model.Favorite{
		{UserID: "demo_user", StationUUID: "us-1"},
	})

	item := ui.createStationItem()
	row, ok := item.(*StationRow)
	if !ok {
		t.Fatal("Expected createStationItem to return a StationRow")
	}

	ui.updateStationItem(0, row)

	if row.station.StationUUID != "us-1" {
		t.Errorf("Expected row bound to us-1, got %s", row.station.StationUUID)
	}
	if row.favoriteBtn.Text != IconStarFilled {
		t.Errorf("Expected filled star for a favorite, got %q", row.favoriteBtn.Text)
	}

	// Out-of-range ids leave the row untouched
	ui.updateStationItem(99, row)
	if row.station.StationUUID != "us-1" {
		t.Errorf("Expected row to keep us-1, got %s", row.station.StationUUID)
	}
}

func TestFindStation(t *testing.T) {
	ui := newTestUI(t, &fakeStationService{})
	ui.finishStations(testStations(), nil)

	if station := ui.findStation("ke-1"); station == nil || station.Name != "Ghetto Radio" {
		t.Errorf("Expected to find Ghetto Radio, got %+v", station)
	}
	if station := ui.findStation("missing"); station != nil {
		t.Errorf("Expected nil for an unknown id, got %+v", station)
	}
}
