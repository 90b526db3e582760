package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wavedial/wavedial/internal/model"
)

func TestClient_GetStations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/stations" {
			t.Errorf("Expected path /api/stations, got %s", r.URL.Path)
		}
		if region := r.URL.Query().Get("region"); region != "african" {
			t.Errorf("Expected region=african, got %s", region)
		}
		if limit := r.URL.Query().Get("limit"); limit != "50" {
			t.Errorf("Expected limit=50, got %s", limit)
		}

		stations := []model.Station{
			{StationUUID: "uuid-1", Name: "Cape Talk", Country: "South Africa", URLResolved: "http://stream.example.com/1"},
			{StationUUID: "uuid-2", Name: "Lagos FM", Country: "Nigeria", URLResolved: "http://stream.example.com/2"},
		}
		if err := json.NewEncoder(w).Encode(stations); err != nil {
			t.Fatalf("Failed to encode stations: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo_user")
	stations, err := client.GetStations(model.RegionAfrican, 50)
	if err != nil {
		t.Fatalf("GetStations() returned error: %v", err)
	}

	if len(stations) != 2 {
		t.Fatalf("Expected 2 stations, got %d", len(stations))
	}

	if stations[0].Name != "Cape Talk" {
		t.Errorf("Expected first station 'Cape Talk', got '%s'", stations[0].Name)
	}
}

func TestClient_SearchStations(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search" {
			t.Errorf("Expected path /api/search, got %s", r.URL.Path)
		}
		if q := r.URL.Query().Get("q"); q != "jazz" {
			t.Errorf("Expected q=jazz, got %s", q)
		}
		if region := r.URL.Query().Get("region"); region != "american" {
			t.Errorf("Expected region=american, got %s", region)
		}

		if err := json.NewEncoder(w).Encode([]model.Station{}); err != nil {
			t.Fatalf("Failed to encode stations: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo_user")
	stations, err := client.SearchStations("jazz", model.RegionAmerican, 20)
	if err != nil {
		t.Fatalf("SearchStations() returned error: %v", err)
	}

	if len(stations) != 0 {
		t.Errorf("Expected 0 stations from empty response, got %d", len(stations))
	}
}

func TestClient_GetStations_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo_user")
	if _, err := client.GetStations(model.RegionAll, 50); err == nil {
		t.Error("Expected error for server failure, got nil")
	}
}

func TestClient_GetFavorites(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/favorites" {
			t.Errorf("Expected path /api/favorites, got %s", r.URL.Path)
		}
		if userID := r.URL.Query().Get("user_id"); userID != "demo_user" {
			t.Errorf("Expected user_id=demo_user, got %s", userID)
		}

		favorites := []model.Favorite{
			{ID: "fav-1", UserID: "demo_user", StationUUID: "uuid-1", StationName: "Cape Talk", Country: "South Africa"},
		}
		if err := json.NewEncoder(w).Encode(favorites); err != nil {
			t.Fatalf("Failed to encode favorites: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo_user")
	favorites, err := client.GetFavorites()
	if err != nil {
		t.Fatalf("GetFavorites() returned error: %v", err)
	}

	if len(favorites) != 1 {
		t.Fatalf("Expected 1 favorite, got %d", len(favorites))
	}

	if favorites[0].StationUUID != "uuid-1" {
		t.Errorf("Expected StationUUID 'uuid-1', got '%s'", favorites[0].StationUUID)
	}
}

func TestClient_AddFavorite(t *testing.T) {
	tests := []struct {
		name          string
		alreadyExists bool
	}{
		{"new favorite", false},
		{"existing favorite", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("Expected POST, got %s", r.Method)
				}

				var payload model.Favorite
				if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
					t.Fatalf("Failed to decode body: %v", err)
				}
				if payload.UserID != "demo_user" {
					t.Errorf("Expected user_id=demo_user, got %s", payload.UserID)
				}
				if payload.StationUUID != "uuid-9" {
					t.Errorf("Expected station_uuid=uuid-9, got %s", payload.StationUUID)
				}
				if payload.StationName != "Radio Lagos" {
					t.Errorf("Expected station_name='Radio Lagos', got %s", payload.StationName)
				}

				response := map[string]any{
					"message":        "ok",
					"already_exists": test.alreadyExists,
				}
				if err := json.NewEncoder(w).Encode(response); err != nil {
					t.Fatalf("Failed to encode response: %v", err)
				}
			}))
			defer server.Close()

			client := NewClient(server.URL, "demo_user")
			station := &model.Station{StationUUID: "uuid-9", Name: "Radio Lagos", Country: "Nigeria"}

			alreadyExists, err := client.AddFavorite(station)
			if err != nil {
				t.Fatalf("AddFavorite() returned error: %v", err)
			}

			if alreadyExists != test.alreadyExists {
				t.Errorf("AddFavorite() already_exists = %v, expected %v", alreadyExists, test.alreadyExists)
			}
		})
	}
}

func TestClient_RemoveFavorite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		if r.URL.Path != "/api/favorites/uuid-3" {
			t.Errorf("Expected path /api/favorites/uuid-3, got %s", r.URL.Path)
		}
		if userID := r.URL.Query().Get("user_id"); userID != "demo_user" {
			t.Errorf("Expected user_id=demo_user, got %s", userID)
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo_user")
	if err := client.RemoveFavorite("uuid-3"); err != nil {
		t.Fatalf("RemoveFavorite() returned error: %v", err)
	}
}

func TestClient_RemoveFavorite_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo_user")
	if err := client.RemoveFavorite("missing"); err == nil {
		t.Error("Expected error for missing favorite, got nil")
	}
}

func TestClient_Timeout(t *testing.T) {
	client := NewClient("http://localhost:8080", "demo_user")
	if client.httpClient.Timeout != DefaultRequestTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultRequestTimeout, client.httpClient.Timeout)
	}
}

func TestClient_StalledBackend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, "demo_user")
	client.SetTimeout(50 * time.Millisecond)

	if _, err := client.GetStations(model.RegionAll, 50); err == nil {
		t.Error("Expected error from a stalled backend, got nil")
	}
}
