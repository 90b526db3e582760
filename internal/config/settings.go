package config

import (
	"fyne.io/fyne/v2"

	"github.com/wavedial/wavedial/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL      = "backend_url"
	KeyUserID          = "user_id"
	KeyStationPageSize = "station_page_size"
	KeyVolume          = "player_volume"
	KeyRegion          = "station_region"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultBackendURL      = "http://localhost:8001"
	DefaultUserID          = "demo_user"
	DefaultStationPageSize = 50
	DefaultVolume          = 80
	DefaultLanguage        = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBackendURL returns the directory service base URL
func (s *Settings) GetBackendURL() string {
	url := s.app.Preferences().String(KeyBackendURL)
	if url == "" {
		s.SetBackendURL(DefaultBackendURL)
		return DefaultBackendURL
	}
	return url
}

// SetBackendURL sets the directory service base URL
func (s *Settings) SetBackendURL(url string) {
	if url == "" {
		url = DefaultBackendURL
	}
	s.app.Preferences().SetString(KeyBackendURL, url)
}

// GetUserID returns the user identity used for favorites
func (s *Settings) GetUserID() string {
	userID := s.app.Preferences().String(KeyUserID)
	if userID == "" {
		s.SetUserID(DefaultUserID)
		return DefaultUserID
	}
	return userID
}

// SetUserID sets the user identity used for favorites
func (s *Settings) SetUserID(userID string) {
	if userID == "" {
		userID = DefaultUserID
	}
	s.app.Preferences().SetString(KeyUserID, userID)
}

// GetStationPageSize returns how many stations a directory fetch requests
func (s *Settings) GetStationPageSize() int {
	value := s.app.Preferences().Int(KeyStationPageSize)
	if value <= 0 {
		s.SetStationPageSize(DefaultStationPageSize)
		return DefaultStationPageSize
	}
	return value
}

// SetStationPageSize sets how many stations a directory fetch requests
func (s *Settings) SetStationPageSize(size int) {
	if size < 1 {
		size = 1
	}
	if size > 100 {
		size = 100
	}
	s.app.Preferences().SetInt(KeyStationPageSize, size)
}

// GetVolume returns the stored player volume in percent
func (s *Settings) GetVolume() int {
	return s.app.Preferences().IntWithFallback(KeyVolume, DefaultVolume)
}

// SetVolume stores the player volume in percent
func (s *Settings) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	s.app.Preferences().SetInt(KeyVolume, volume)
}

// GetRegion returns the stored station region filter
func (s *Settings) GetRegion() model.Region {
	value := s.app.Preferences().String(KeyRegion)
	if value == "" {
		s.SetRegion(model.RegionAll)
		return model.RegionAll
	}
	return model.ParseRegion(value)
}

// SetRegion stores the station region filter
func (s *Settings) SetRegion(region model.Region) {
	s.app.Preferences().SetString(KeyRegion, region.String())
}

// GetRegionOptions returns the selectable regions in display order
func (s *Settings) GetRegionOptions() []model.Region {
	return []model.Region{model.RegionAll, model.RegionAmerican, model.RegionAfrican}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
