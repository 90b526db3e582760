package model

import "testing"

func TestParseRegion(t *testing.T) {
	tests := []struct {
		value    string
		expected Region
	}{
		{"all", RegionAll},
		{"american", RegionAmerican},
		{"african", RegionAfrican},
		{"", RegionAll},
		{"asian", RegionAll},
		{"AMERICAN", RegionAll},
	}

	for _, test := range tests {
		result := ParseRegion(test.value)
		if result != test.expected {
			t.Errorf("ParseRegion(%q) = %s, expected %s", test.value, result, test.expected)
		}
	}
}

func TestRegion_Countries(t *testing.T) {
	tests := []struct {
		region   Region
		expected int
	}{
		{RegionAmerican, 6},
		{RegionAfrican, 10},
		{RegionAll, 16},
	}

	for _, test := range tests {
		countries := test.region.Countries()
		if len(countries) != test.expected {
			t.Errorf("Region(%s).Countries() returned %d countries, expected %d",
				test.region, len(countries), test.expected)
		}
	}

	american := RegionAmerican.Countries()
	if american[0] != "United States" {
		t.Errorf("Expected first American country to be 'United States', got '%s'", american[0])
	}

	african := RegionAfrican.Countries()
	if african[0] != "South Africa" {
		t.Errorf("Expected first African country to be 'South Africa', got '%s'", african[0])
	}
}

func TestRegion_CountriesCopy(t *testing.T) {
	countries := RegionAmerican.Countries()
	countries[0] = "changed"

	fresh := RegionAmerican.Countries()
	if fresh[0] != "United States" {
		t.Errorf("Countries() shares backing storage with callers, got '%s'", fresh[0])
	}
}

func TestRegion_String(t *testing.T) {
	region := RegionAfrican
	expected := "african"
	result := region.String()

	if result != expected {
		t.Errorf("Region.String() = %s, expected %s", result, expected)
	}
}

func TestNewFavorite(t *testing.T) {
	station := &Station{
		StationUUID: "abc-123",
		Name:        "Cape Talk",
		Country:     "South Africa",
		URLResolved: "http://stream.example.com/capetalk",
	}

	favorite := NewFavorite("demo_user", station)

	if favorite.UserID != "demo_user" {
		t.Errorf("Expected UserID to be 'demo_user', got '%s'", favorite.UserID)
	}

	if favorite.StationUUID != "abc-123" {
		t.Errorf("Expected StationUUID to be 'abc-123', got '%s'", favorite.StationUUID)
	}

	if favorite.StationName != "Cape Talk" {
		t.Errorf("Expected StationName to be 'Cape Talk', got '%s'", favorite.StationName)
	}

	if favorite.Country != "South Africa" {
		t.Errorf("Expected Country to be 'South Africa', got '%s'", favorite.Country)
	}
}
