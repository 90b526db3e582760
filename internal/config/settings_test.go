package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/wavedial/wavedial/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestBackendURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	url := settings.GetBackendURL()
	if url != DefaultBackendURL {
		t.Errorf("Expected default backend URL %s, got %s", DefaultBackendURL, url)
	}

	// Test setting custom value
	customURL := "http://radio.example.com:9000"
	settings.SetBackendURL(customURL)

	retrievedURL := settings.GetBackendURL()
	if retrievedURL != customURL {
		t.Errorf("Expected backend URL %s, got %s", customURL, retrievedURL)
	}

	// Test empty URL defaults back
	settings.SetBackendURL("")
	retrievedURL = settings.GetBackendURL()
	if retrievedURL != DefaultBackendURL {
		t.Errorf("Empty backend URL should default to %s, got %s", DefaultBackendURL, retrievedURL)
	}
}

func TestUserID(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	userID := settings.GetUserID()
	if userID != DefaultUserID {
		t.Errorf("Expected default user ID %s, got %s", DefaultUserID, userID)
	}

	// Test setting custom value
	settings.SetUserID("listener_42")

	retrievedID := settings.GetUserID()
	if retrievedID != "listener_42" {
		t.Errorf("Expected user ID 'listener_42', got %s", retrievedID)
	}

	// Test empty user ID defaults back
	settings.SetUserID("")
	retrievedID = settings.GetUserID()
	if retrievedID != DefaultUserID {
		t.Errorf("Empty user ID should default to %s, got %s", DefaultUserID, retrievedID)
	}
}

func TestStationPageSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	pageSize := settings.GetStationPageSize()
	if pageSize != DefaultStationPageSize {
		t.Errorf("Expected default page size %d, got %d", DefaultStationPageSize, pageSize)
	}

	// Test setting custom value
	settings.SetStationPageSize(25)

	retrievedSize := settings.GetStationPageSize()
	if retrievedSize != 25 {
		t.Errorf("Expected page size 25, got %d", retrievedSize)
	}

	// Test boundary values
	settings.SetStationPageSize(0) // Should be clamped to 1
	if settings.GetStationPageSize() != 1 {
		t.Error("Page size should be clamped to minimum 1")
	}

	settings.SetStationPageSize(500) // Should be clamped to 100
	if settings.GetStationPageSize() != 100 {
		t.Error("Page size should be clamped to maximum 100")
	}
}

func TestVolume(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	volume := settings.GetVolume()
	if volume != DefaultVolume {
		t.Errorf("Expected default volume %d, got %d", DefaultVolume, volume)
	}

	// Test setting custom value
	settings.SetVolume(35)

	retrievedVolume := settings.GetVolume()
	if retrievedVolume != 35 {
		t.Errorf("Expected volume 35, got %d", retrievedVolume)
	}

	// Test zero is a stored value, not a missing one
	settings.SetVolume(0)
	if settings.GetVolume() != 0 {
		t.Errorf("Expected volume 0, got %d", settings.GetVolume())
	}

	// Test boundary values
	settings.SetVolume(-20) // Should be clamped to 0
	if settings.GetVolume() != 0 {
		t.Error("Volume should be clamped to minimum 0")
	}

	settings.SetVolume(150) // Should be clamped to 100
	if settings.GetVolume() != 100 {
		t.Error("Volume should be clamped to maximum 100")
	}
}

func TestRegion(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	region := settings.GetRegion()
	if region != model.RegionAll {
		t.Errorf("Expected default region %s, got %s", model.RegionAll, region)
	}

	// Test setting custom value
	settings.SetRegion(model.RegionAfrican)

	retrievedRegion := settings.GetRegion()
	if retrievedRegion != model.RegionAfrican {
		t.Errorf("Expected region %s, got %s", model.RegionAfrican, retrievedRegion)
	}

	// Test unknown stored value falls back to all regions
	app.Preferences().SetString(KeyRegion, "antarctic")
	retrievedRegion = settings.GetRegion()
	if retrievedRegion != model.RegionAll {
		t.Errorf("Unknown region should fall back to %s, got %s", model.RegionAll, retrievedRegion)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language 'ru', got %s", retrievedLang)
	}
}

func TestGetRegionOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetRegionOptions()
	expectedOptions := []model.Region{model.RegionAll, model.RegionAmerican, model.RegionAfrican}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d region options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Region option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
